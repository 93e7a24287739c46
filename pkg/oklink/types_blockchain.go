package oklink

// BlockchainSummary represents one chain in /blockchain/summary.
type BlockchainSummary struct {
	ChainFullName               string `json:"chainFullName"               yaml:"chainFullName"`
	ChainShortName              string `json:"chainShortName"              yaml:"chainShortName"              validate:"required"`
	Symbol                      string `json:"symbol"                      yaml:"symbol"`
	LastHeight                  string `json:"lastHeight"                  yaml:"lastHeight"                  validate:"required"`
	LastBlockTime               string `json:"lastBlockTime"               yaml:"lastBlockTime"`
	CirculatingSupply           string `json:"circulatingSupply"           yaml:"circulatingSupply"`
	CirculatingSupplyProportion string `json:"circulatingSupplyProportion" yaml:"circulatingSupplyProportion"`
	Transactions                string `json:"transactions"                yaml:"transactions"`
}

// BlockchainDetail represents /blockchain/info.
type BlockchainDetail struct {
	ChainFullName     string `json:"chainFullName"     yaml:"chainFullName"`
	ChainShortName    string `json:"chainShortName"    yaml:"chainShortName"    validate:"required"`
	Symbol            string `json:"symbol"            yaml:"symbol"`
	Rank              string `json:"rank"              yaml:"rank"`
	Mineable          bool   `json:"mineable"          yaml:"mineable"`
	Algorithm         string `json:"algorithm"         yaml:"algorithm"`
	Consensus         string `json:"consensus"         yaml:"consensus"`
	DiffEstimation    string `json:"diffEstimation"    yaml:"diffEstimation"`
	CurrentDiff       string `json:"currentDiff"       yaml:"currentDiff"`
	DiffAdjustTime    string `json:"diffAdjustTime"    yaml:"diffAdjustTime"`
	CirculatingSupply string `json:"circulatingSupply" yaml:"circulatingSupply"`
	TotalSupply       string `json:"totalSupply"       yaml:"totalSupply"`
	TPS               string `json:"tps"               yaml:"tps"`
	LastHeight        string `json:"lastHeight"        yaml:"lastHeight"`
	LastBlockTime     string `json:"lastBlockTime"     yaml:"lastBlockTime"`
	IssueDate         string `json:"issueDate"         yaml:"issueDate"`
}

// BlockchainStatistics represents /blockchain/block.
// Times are unix milliseconds encoded as strings.
type BlockchainStatistics struct {
	ChainFullName               string `json:"chainFullName"               yaml:"chainFullName"`
	ChainShortName              string `json:"chainShortName"              yaml:"chainShortName"              validate:"required"`
	Symbol                      string `json:"symbol"                      yaml:"symbol"`
	LastHeight                  string `json:"lastHeight"                  yaml:"lastHeight"`
	FirstExchangeHistoricalTime string `json:"firstExchangeHistoricalTime" yaml:"firstExchangeHistoricalTime"`
	FirstBlockTime              string `json:"firstBlockTime"              yaml:"firstBlockTime"`
	FirstBlockHeight            string `json:"firstBlockHeight"            yaml:"firstBlockHeight"`
	AvgBlockInterval            string `json:"avgBlockInterval"            yaml:"avgBlockInterval"`
	AvgBlockSize24h             string `json:"avgBlockSize24h"             yaml:"avgBlockSize24h"`
	AvgBlockSize24hPercent      string `json:"avgBlockSize24hPercent"      yaml:"avgBlockSize24hPercent"`
	MediaBlockSize              string `json:"mediaBlockSize"              yaml:"mediaBlockSize"`
	HalveTime                   string `json:"halveTime"                   yaml:"halveTime"`
}

// BlockchainHolders represents /blockchain/address.
type BlockchainHolders struct {
	ChainFullName           string `json:"chainFullName"           yaml:"chainFullName"`
	ChainShortName          string `json:"chainShortName"          yaml:"chainShortName"          validate:"required"`
	Symbol                  string `json:"symbol"                  yaml:"symbol"`
	ValidAddressCount       string `json:"validAddressCount"       yaml:"validAddressCount"`
	NewAddressCount24h      string `json:"newAddressCount24h"      yaml:"newAddressCount24h"`
	TotalAddresses          string `json:"totalAddresses"          yaml:"totalAddresses"`
	NewTotalAddresses24h    string `json:"newTotalAddresses24h"    yaml:"newTotalAddresses24h"`
	ContractAddresses       string `json:"contractAddresses"       yaml:"contractAddresses"`
	NewContractAddresses24h string `json:"newContractAddresses24h" yaml:"newContractAddresses24h"`
	ExternalAddresses       string `json:"externalAddresses"       yaml:"externalAddresses"`
	NewExternalAddresses24h string `json:"newExternalAddresses24h" yaml:"newExternalAddresses24h"`
	ActiveAddresses         string `json:"activeAddresses"         yaml:"activeAddresses"`
	NewActiveAddresses      string `json:"newActiveAddresses"      yaml:"newActiveAddresses"`
}

// BlockchainGasFee represents /blockchain/fee.
type BlockchainGasFee struct {
	ChainFullName         string `json:"chainFullName"         yaml:"chainFullName"`
	ChainShortName        string `json:"chainShortName"        yaml:"chainShortName"        validate:"required"`
	Symbol                string `json:"symbol"                yaml:"symbol"`
	BestTransactionFee    string `json:"bestTransactionFee"    yaml:"bestTransactionFee"`
	BestTransactionFeeSat string `json:"bestTransactionFeeSat" yaml:"bestTransactionFeeSat"`
	RecommendedGasPrice   string `json:"recommendedGasPrice"   yaml:"recommendedGasPrice"`
	RapidGasPrice         string `json:"rapidGasPrice"         yaml:"rapidGasPrice"`
	StandardGasPrice      string `json:"standardGasPrice"      yaml:"standardGasPrice"`
	SlowGasPrice          string `json:"slowGasPrice"          yaml:"slowGasPrice"`
	BaseFee               string `json:"baseFee"               yaml:"baseFee"`
	GasUsedRatio          string `json:"gasUsedRatio"          yaml:"gasUsedRatio"`
}

// BlockchainTransaction represents /blockchain/transaction.
type BlockchainTransaction struct {
	ChainFullName                 string `json:"chainFullName"                 yaml:"chainFullName"`
	ChainShortName                string `json:"chainShortName"                yaml:"chainShortName"                validate:"required"`
	Symbol                        string `json:"symbol"                        yaml:"symbol"`
	PendingTransactionCount       string `json:"pendingTransactionCount"       yaml:"pendingTransactionCount"`
	TransactionValue24h           string `json:"transactionValue24h"           yaml:"transactionValue24h"`
	TotalTransactionCount         string `json:"totalTransactionCount"         yaml:"totalTransactionCount"`
	TranRate                      string `json:"tranRate"                      yaml:"tranRate"`
	AvgTransactionCount24h        string `json:"avgTransactionCount24h"        yaml:"avgTransactionCount24h"`
	AvgTransactionCount24hPercent string `json:"avgTransactionCount24hPercent" yaml:"avgTransactionCount24hPercent"`
	PendingTransactionSize        string `json:"pendingTransactionSize"        yaml:"pendingTransactionSize"`
}

// BlockchainHashrate represents /blockchain/hashes.
type BlockchainHashrate struct {
	ChainFullName  string `json:"chainFullName"  yaml:"chainFullName"`
	ChainShortName string `json:"chainShortName" yaml:"chainShortName" validate:"required"`
	Symbol         string `json:"symbol"         yaml:"symbol"`
	// HashRate is the network hash rate over the past week.
	HashRate string `json:"hashRate" yaml:"hashRate"`
	// HashRateChange24h is a signed ratio, 0.02 meaning +2%.
	HashRateChange24h string `json:"hashRateChange24h" yaml:"hashRateChange24h"`
}

// BlockchainMine represents /blockchain/mine.
type BlockchainMine struct {
	ChainFullName          string `json:"chainFullName"          yaml:"chainFullName"`
	ChainShortName         string `json:"chainShortName"         yaml:"chainShortName"         validate:"required"`
	Symbol                 string `json:"symbol"                 yaml:"symbol"`
	AvgMineReward24h       string `json:"avgMineReward24h"       yaml:"avgMineReward24h"`
	MinerIncomePerUnit     string `json:"minerIncomePerUnit"     yaml:"minerIncomePerUnit"`
	MinerIncomePerUnitCoin string `json:"minerIncomePerUnitCoin" yaml:"minerIncomePerUnitCoin"`
}
