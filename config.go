package bankacct

type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Limits struct {
		// MaxWithdrawal is a decimal string, e.g. "500.00".
		MaxWithdrawal string `yaml:"max_withdrawal"`
	} `yaml:"limits"`
}
