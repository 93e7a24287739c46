package oklink

// TokenInfo is one token in a TokenList.
type TokenInfo struct {
	TokenFullName        string `json:"tokenFullName"        yaml:"tokenFullName"`
	Token                string `json:"token"                yaml:"token"`
	Precision            string `json:"precision"            yaml:"precision"`
	TokenContractAddress string `json:"tokenContractAddress" yaml:"tokenContractAddress" validate:"required"`
	ProtocolType         string `json:"protocolType"         yaml:"protocolType"`
	AddressCount         string `json:"addressCount"         yaml:"addressCount"`
	TotalSupply          string `json:"totalSupply"          yaml:"totalSupply"`
	CirculatingSupply    string `json:"circulatingSupply"    yaml:"circulatingSupply"`
	Price                string `json:"price"                yaml:"price"`
	Website              string `json:"website"              yaml:"website"`
	TotalMarketCap       string `json:"totalMarketCap"       yaml:"totalMarketCap"`
	IssueDate            string `json:"issueDate"            yaml:"issueDate"`
	TransactionAmount24h string `json:"transactionAmount24h" yaml:"transactionAmount24h"`
	TVL                  string `json:"tvl"                  yaml:"tvl"`
	LogoURL              string `json:"logoUrl"              yaml:"logoUrl"`
}

// TokenList represents /token/token-list.
type TokenList struct {
	Paging `yaml:",inline"`

	ChainFullName  string      `json:"chainFullName"  yaml:"chainFullName"`
	ChainShortName string      `json:"chainShortName" yaml:"chainShortName"`
	TokenList      []TokenInfo `json:"tokenList"      yaml:"tokenList"`
}

// TokenPosition is one holder in a TokenPositionList.
type TokenPosition struct {
	HolderAddress     string `json:"holderAddress"     yaml:"holderAddress"     validate:"required"`
	Amount            string `json:"amount"            yaml:"amount"`
	ValueUSD          string `json:"valueUsd"          yaml:"valueUsd"`
	PositionChange24h string `json:"positionChange24h" yaml:"positionChange24h"`
	Rank              string `json:"rank"              yaml:"rank"`
}

// TokenPositionList represents /token/position-list.
type TokenPositionList struct {
	Paging `yaml:",inline"`

	ChainFullName     string          `json:"chainFullName"     yaml:"chainFullName"`
	ChainShortName    string          `json:"chainShortName"    yaml:"chainShortName"`
	CirculatingSupply string          `json:"circulatingSupply" yaml:"circulatingSupply"`
	PositionList      []TokenPosition `json:"positionList"      yaml:"positionList"`
}
