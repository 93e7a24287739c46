package oklink

// AddressSummary represents /address/address-summary.
type AddressSummary struct {
	ChainFullName                 string `json:"chainFullName"                 yaml:"chainFullName"`
	ChainShortName                string `json:"chainShortName"                yaml:"chainShortName"                validate:"required"`
	Address                       string `json:"address"                       yaml:"address"                       validate:"required"`
	ContractAddress               string `json:"contractAddress"               yaml:"contractAddress"`
	IsProducerAddress             bool   `json:"isProducerAddress"             yaml:"isProducerAddress"`
	Balance                       string `json:"balance"                       yaml:"balance"`
	BalanceSymbol                 string `json:"balanceSymbol"                 yaml:"balanceSymbol"`
	TransactionCount              string `json:"transactionCount"              yaml:"transactionCount"`
	Verifying                     string `json:"verifying"                     yaml:"verifying"`
	SendAmount                    string `json:"sendAmount"                    yaml:"sendAmount"`
	ReceiveAmount                 string `json:"receiveAmount"                 yaml:"receiveAmount"`
	TokenAmount                   string `json:"tokenAmount"                   yaml:"tokenAmount"`
	TotalTokenValue               string `json:"totalTokenValue"               yaml:"totalTokenValue"`
	CreateContractAddress         string `json:"createContractAddress"         yaml:"createContractAddress"`
	CreateContractTransactionHash string `json:"createContractTransactionHash" yaml:"createContractTransactionHash"`
	FirstTransactionTime          string `json:"firstTransactionTime"          yaml:"firstTransactionTime"`
	LastTransactionTime           string `json:"lastTransactionTime"           yaml:"lastTransactionTime"`
	Token                         string `json:"token"                         yaml:"token"`
	Bandwidth                     string `json:"bandwidth"                     yaml:"bandwidth"`
	Energy                        string `json:"energy"                        yaml:"energy"`
	VotingRights                  string `json:"votingRights"                  yaml:"votingRights"`
	UnclaimedVotingRewards        string `json:"unclaimedVotingRewards"        yaml:"unclaimedVotingRewards"`
	IsAaAddress                   bool   `json:"isAaAddress"                   yaml:"isAaAddress"`
}

// AddressTransaction is one transaction in an AddressTransactionList.
type AddressTransaction struct {
	TxID                 string `json:"txId"                 yaml:"txId"                 validate:"required"`
	MethodID             string `json:"methodId"             yaml:"methodId"`
	BlockHash            string `json:"blockHash"            yaml:"blockHash"`
	Height               string `json:"height"               yaml:"height"`
	TransactionTime      string `json:"transactionTime"      yaml:"transactionTime"`
	From                 string `json:"from"                 yaml:"from"`
	To                   string `json:"to"                   yaml:"to"`
	IsFromContract       bool   `json:"isFromContract"       yaml:"isFromContract"`
	IsToContract         bool   `json:"isToContract"         yaml:"isToContract"`
	Amount               string `json:"amount"               yaml:"amount"`
	TransactionSymbol    string `json:"transactionSymbol"    yaml:"transactionSymbol"`
	TxFee                string `json:"txFee"                yaml:"txFee"`
	State                string `json:"state"                yaml:"state"`
	TokenID              string `json:"tokenId"              yaml:"tokenId"`
	TokenContractAddress string `json:"tokenContractAddress" yaml:"tokenContractAddress"`
	ChallengeStatus      string `json:"challengeStatus"      yaml:"challengeStatus"`
	L1OriginHash         string `json:"l1OriginHash"         yaml:"l1OriginHash"`
}

// AddressTransactionList represents /address/transaction-list.
type AddressTransactionList struct {
	Paging `yaml:",inline"`

	ChainFullName    string               `json:"chainFullName"    yaml:"chainFullName"`
	ChainShortName   string               `json:"chainShortName"   yaml:"chainShortName"`
	TransactionLists []AddressTransaction `json:"transactionLists" yaml:"transactionLists"`
}

// TokenHolding is one token in an AddressTokenBalance.
type TokenHolding struct {
	Symbol               string `json:"symbol"               yaml:"symbol"`
	TokenContractAddress string `json:"tokenContractAddress" yaml:"tokenContractAddress" validate:"required"`
	HoldingAmount        string `json:"holdingAmount"        yaml:"holdingAmount"`
	PriceUSD             string `json:"priceUsd"             yaml:"priceUsd"`
	ValueUSD             string `json:"valueUsd"             yaml:"valueUsd"`
	TokenID              string `json:"tokenId"              yaml:"tokenId"`
}

// AddressTokenBalance represents /address/token-balance.
type AddressTokenBalance struct {
	Paging `yaml:",inline"`

	TokenList []TokenHolding `json:"tokenList" yaml:"tokenList"`
}

// UTXO is one unspent output.
type UTXO struct {
	TxID          string `json:"txid"          yaml:"txid"          validate:"required"`
	Height        string `json:"height"        yaml:"height"`
	BlockTime     string `json:"blockTime"     yaml:"blockTime"`
	Address       string `json:"address"       yaml:"address"`
	UnspentAmount string `json:"unspentAmount" yaml:"unspentAmount"`
	Index         string `json:"index"         yaml:"index"`
}

// AddressUTXOList represents /address/utxo.
type AddressUTXOList struct {
	Paging `yaml:",inline"`

	UTXOList []UTXO `json:"utxoList" yaml:"utxoList"`
}

// RichListEntry represents one holder in /address/rich-list.
type RichListEntry struct {
	Symbol           string `json:"symbol"           yaml:"symbol"`
	Rank             string `json:"rank"             yaml:"rank"             validate:"required"`
	Address          string `json:"address"          yaml:"address"          validate:"required"`
	Amount           string `json:"amount"           yaml:"amount"`
	TransactionCount string `json:"transactionCount" yaml:"transactionCount"`
	HoldRatio        string `json:"holdRatio"        yaml:"holdRatio"`
}
