package oklink

// TransactionInput is one input of a TransactionDetail.
type TransactionInput struct {
	InputHash  string `json:"inputHash"  yaml:"inputHash"`
	IsContract bool   `json:"isContract" yaml:"isContract"`
	Amount     string `json:"amount"     yaml:"amount"`
}

// TransactionOutput is one output of a TransactionDetail.
type TransactionOutput struct {
	OutputHash string `json:"outputHash" yaml:"outputHash"`
	IsContract bool   `json:"isContract" yaml:"isContract"`
	Amount     string `json:"amount"     yaml:"amount"`
}

// TokenTransfer is one token movement inside a transaction.
type TokenTransfer struct {
	Index                string `json:"index"                yaml:"index"`
	Token                string `json:"token"                yaml:"token"`
	TokenContractAddress string `json:"tokenContractAddress" yaml:"tokenContractAddress"`
	Symbol               string `json:"symbol"               yaml:"symbol"`
	From                 string `json:"from"                 yaml:"from"`
	To                   string `json:"to"                   yaml:"to"`
	IsFromContract       bool   `json:"isFromContract"       yaml:"isFromContract"`
	IsToContract         bool   `json:"isToContract"         yaml:"isToContract"`
	TokenID              string `json:"tokenId"              yaml:"tokenId"`
	Amount               string `json:"amount"               yaml:"amount"`
}

// TransactionDetail represents /transaction/transaction-fills.
type TransactionDetail struct {
	ChainFullName        string              `json:"chainFullName"        yaml:"chainFullName"`
	ChainShortName       string              `json:"chainShortName"       yaml:"chainShortName"       validate:"required"`
	TxID                 string              `json:"txid"                 yaml:"txid"                 validate:"required"`
	Height               string              `json:"height"               yaml:"height"`
	TransactionTime      string              `json:"transactionTime"      yaml:"transactionTime"`
	Amount               string              `json:"amount"               yaml:"amount"`
	TransactionSymbol    string              `json:"transactionSymbol"    yaml:"transactionSymbol"`
	TxFee                string              `json:"txfee"                yaml:"txfee"`
	Index                string              `json:"index"                yaml:"index"`
	Confirm              string              `json:"confirm"              yaml:"confirm"`
	InputDetails         []TransactionInput  `json:"inputDetails"         yaml:"inputDetails"`
	OutputDetails        []TransactionOutput `json:"outputDetails"        yaml:"outputDetails"`
	State                string              `json:"state"                yaml:"state"`
	GasLimit             string              `json:"gasLimit"             yaml:"gasLimit"`
	GasUsed              string              `json:"gasUsed"              yaml:"gasUsed"`
	GasPrice             string              `json:"gasPrice"             yaml:"gasPrice"`
	TotalTransactionSize string              `json:"totalTransactionSize" yaml:"totalTransactionSize"`
	VirtualSize          string              `json:"virtualSize"          yaml:"virtualSize"`
	Weight               string              `json:"weight"               yaml:"weight"`
	Nonce                string              `json:"nonce"                yaml:"nonce"`
	TransactionType      string              `json:"transactionType"      yaml:"transactionType"`
	MethodID             string              `json:"methodId"             yaml:"methodId"`
	IsAaTransaction      bool                `json:"isAaTransaction"      yaml:"isAaTransaction"`
	TokenTransferDetails []TokenTransfer     `json:"tokenTransferDetails" yaml:"tokenTransferDetails"`
}

// TransactionListItem is one transaction in a TransactionList.
type TransactionListItem struct {
	TxID              string `json:"txid"              yaml:"txid"              validate:"required"`
	BlockHash         string `json:"blockHash"         yaml:"blockHash"`
	Height            string `json:"height"            yaml:"height"`
	TransactionTime   string `json:"transactionTime"   yaml:"transactionTime"`
	Input             string `json:"input"             yaml:"input"`
	Output            string `json:"output"            yaml:"output"`
	IsInputContract   bool   `json:"isInputContract"   yaml:"isInputContract"`
	IsOutputContract  bool   `json:"isOutputContract"  yaml:"isOutputContract"`
	Amount            string `json:"amount"            yaml:"amount"`
	TransactionSymbol string `json:"transactionSymbol" yaml:"transactionSymbol"`
	TxFee             string `json:"txfee"             yaml:"txfee"`
	MethodID          string `json:"methodId"          yaml:"methodId"`
	TransactionType   string `json:"transactionType"   yaml:"transactionType"`
	State             string `json:"state"             yaml:"state"`
}

// TransactionList represents /transaction/transaction-list.
type TransactionList struct {
	Paging `yaml:",inline"`

	ChainFullName   string                `json:"chainFullName"   yaml:"chainFullName"`
	ChainShortName  string                `json:"chainShortName"  yaml:"chainShortName"`
	TransactionList []TransactionListItem `json:"transactionList" yaml:"transactionList"`
}
