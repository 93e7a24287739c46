package oklink

// Paging carries the paging fields OKLink repeats on every list record.
type Paging struct {
	Page      string `json:"page"      yaml:"page"`
	Limit     string `json:"limit"     yaml:"limit"`
	TotalPage string `json:"totalPage" yaml:"totalPage"`
}

// BlockFill represents /block/block-fills.
type BlockFill struct {
	ChainFullName  string `json:"chainFullName"  yaml:"chainFullName"`
	ChainShortName string `json:"chainShortName" yaml:"chainShortName" validate:"required"`
	Hash           string `json:"hash"           yaml:"hash"           validate:"required"`
	Height         string `json:"height"         yaml:"height"         validate:"required"`
	Validator      string `json:"validator"      yaml:"validator"`
	BlockTime      string `json:"blockTime"      yaml:"blockTime"`
	TxnCount       string `json:"txnCount"       yaml:"txnCount"`
	Amount         string `json:"amount"         yaml:"amount"`
	BlockSize      string `json:"blockSize"      yaml:"blockSize"`
	MineReward     string `json:"mineReward"     yaml:"mineReward"`
	TotalFee       string `json:"totalFee"       yaml:"totalFee"`
	FeeSymbol      string `json:"feeSymbol"      yaml:"feeSymbol"`
	OmmerBlock     string `json:"ommerBlock"     yaml:"ommerBlock"`
	MerkleRootHash string `json:"merkleRootHash" yaml:"merkleRootHash"`
	GasUsed        string `json:"gasUsed"        yaml:"gasUsed"`
	GasLimit       string `json:"gasLimit"       yaml:"gasLimit"`
	GasAvgPrice    string `json:"gasAvgPrice"    yaml:"gasAvgPrice"`
	State          string `json:"state"          yaml:"state"`
	Burnt          string `json:"burnt"          yaml:"burnt"`
	NetWork        string `json:"netWork"        yaml:"netWork"`
	TxnInternal    string `json:"txnInternal"    yaml:"txnInternal"`
	Miner          string `json:"miner"          yaml:"miner"`
	// Difficuity is spelled as on the wire.
	Difficuity    string `json:"difficuity"    yaml:"difficuity"`
	Nonce         string `json:"nonce"         yaml:"nonce"`
	Tips          string `json:"tips"          yaml:"tips"`
	Confirm       string `json:"confirm"       yaml:"confirm"`
	BaseFeePerGas string `json:"baseFeePerGas" yaml:"baseFeePerGas"`
}

// BlockListItem is one block in a BlockList.
type BlockListItem struct {
	Hash       string `json:"hash"       yaml:"hash"`
	Height     string `json:"height"     yaml:"height"     validate:"required"`
	Validator  string `json:"validator"  yaml:"validator"`
	BlockTime  string `json:"blockTime"  yaml:"blockTime"`
	TxnCount   string `json:"txnCount"   yaml:"txnCount"`
	BlockSize  string `json:"blockSize"  yaml:"blockSize"`
	MineReward string `json:"mineReward" yaml:"mineReward"`
	TotalFee   string `json:"totalFee"   yaml:"totalFee"`
	FeeSymbol  string `json:"feeSymbol"  yaml:"feeSymbol"`
	OmmerBlock string `json:"ommerBlock" yaml:"ommerBlock"`
	GasUsed    string `json:"gasUsed"    yaml:"gasUsed"`
	GasLimit   string `json:"gasLimit"   yaml:"gasLimit"`
}

// BlockList represents /block/block-list.
type BlockList struct {
	Paging `yaml:",inline"`

	ChainFullName  string          `json:"chainFullName"  yaml:"chainFullName"`
	ChainShortName string          `json:"chainShortName" yaml:"chainShortName"`
	BlockList      []BlockListItem `json:"blockList"      yaml:"blockList"`
}

// BlockTransaction is one transaction in a BlockTransactionList.
type BlockTransaction struct {
	TxID                 string `json:"txid"                 yaml:"txid"                 validate:"required"`
	MethodID             string `json:"methodId"             yaml:"methodId"`
	BlockHash            string `json:"blockHash"            yaml:"blockHash"`
	Height               string `json:"height"               yaml:"height"`
	TransactionTime      string `json:"transactionTime"      yaml:"transactionTime"`
	From                 string `json:"from"                 yaml:"from"`
	IsFromContract       bool   `json:"isFromContract"       yaml:"isFromContract"`
	IsToContract         bool   `json:"isToContract"         yaml:"isToContract"`
	To                   string `json:"to"                   yaml:"to"`
	Amount               string `json:"amount"               yaml:"amount"`
	TransactionSymbol    string `json:"transactionSymbol"    yaml:"transactionSymbol"`
	TxFee                string `json:"txfee"                yaml:"txfee"`
	State                string `json:"state"                yaml:"state"`
	TokenID              string `json:"tokenId"              yaml:"tokenId"`
	TokenContractAddress string `json:"tokenContractAddress" yaml:"tokenContractAddress"`
}

// BlockTransactionList represents /block/transaction-list. The upstream
// names the transaction array blockList.
type BlockTransactionList struct {
	Paging `yaml:",inline"`

	ChainFullName  string             `json:"chainFullName"  yaml:"chainFullName"`
	ChainShortName string             `json:"chainShortName" yaml:"chainShortName"`
	BlockList      []BlockTransaction `json:"blockList"      yaml:"blockList"`
}

// MultiBlockTransaction is one transaction in a BlockTransactionListMulti.
type MultiBlockTransaction struct {
	Height               string `json:"height"               yaml:"height"`
	TxID                 string `json:"txId"                 yaml:"txId"                 validate:"required"`
	BlockHash            string `json:"blockHash"            yaml:"blockHash"`
	TransactionTime      string `json:"transactionTime"      yaml:"transactionTime"`
	From                 string `json:"from"                 yaml:"from"`
	IsFromContract       bool   `json:"isFromContract"       yaml:"isFromContract"`
	IsToContract         bool   `json:"isToContract"         yaml:"isToContract"`
	To                   string `json:"to"                   yaml:"to"`
	Amount               string `json:"amount"               yaml:"amount"`
	TransactionSymbol    string `json:"transactionSymbol"    yaml:"transactionSymbol"`
	TxFee                string `json:"txFee"                yaml:"txFee"`
	State                string `json:"state"                yaml:"state"`
	TokenID              string `json:"tokenId"              yaml:"tokenId"`
	TokenContractAddress string `json:"tokenContractAddress" yaml:"tokenContractAddress"`
}

// BlockTransactionListMulti represents /block/transaction-list-multi.
type BlockTransactionListMulti struct {
	Paging `yaml:",inline"`

	TransactionList []MultiBlockTransaction `json:"transactionList" yaml:"transactionList"`
}

// BlockHeightByTime represents /block/block-height-by-time.
type BlockHeightByTime struct {
	Height    string `json:"height"    yaml:"height"    validate:"required"`
	BlockTime string `json:"blockTime" yaml:"blockTime"`
}

// BlockCountDown represents /block/block-count-down.
type BlockCountDown struct {
	CurrentHeight        string `json:"currentHeight"        yaml:"currentHeight"`
	CountDownBlockHeight string `json:"countDownBlockHeight" yaml:"countDownBlockHeight" validate:"required"`
	RemainingHeight      string `json:"remainingHeight"      yaml:"remainingHeight"`
	EstimateTime         string `json:"estimateTime"         yaml:"estimateTime"`
}

// MinedBlock is one block in a MinedBlockList.
type MinedBlock struct {
	Height     string `json:"height"     yaml:"height"     validate:"required"`
	BlockHash  string `json:"blockHash"  yaml:"blockHash"`
	BlockTime  string `json:"blockTime"  yaml:"blockTime"`
	TxnCount   string `json:"txnCount"   yaml:"txnCount"`
	BlockSize  string `json:"blockSize"  yaml:"blockSize"`
	MineReward string `json:"mineReward" yaml:"mineReward"`
	TotalFee   string `json:"totalFee"   yaml:"totalFee"`
	FeeSymbol  string `json:"feeSymbol"  yaml:"feeSymbol"`
}

// MinedBlockList represents /block/mined-block-list.
type MinedBlockList struct {
	Paging `yaml:",inline"`

	BlockList []MinedBlock `json:"blockList" yaml:"blockList"`
}
