package seed

import "fmt"

// Config sets how many records a run creates.
type Config struct {
	Users         int `env:"POPDB_USERS" envDefault:"20"`
	Organizations int `env:"POPDB_ORGANIZATIONS" envDefault:"10"`
	Offers        int `env:"POPDB_OFFERS" envDefault:"30"`
	// MaxVolunteersPerOffer caps the random number of users linked to
	// each offer.
	MaxVolunteersPerOffer int `env:"POPDB_MAX_VOLUNTEERS" envDefault:"5"`
	// Seed makes a run reproducible. Zero picks a random seed.
	Seed uint64 `env:"POPDB_SEED" envDefault:"0"`
}

// DefaultConfig matches the env defaults.
func DefaultConfig() Config {
	return Config{
		Users:                 20,
		Organizations:         10,
		Offers:                30,
		MaxVolunteersPerOffer: 5,
	}
}

// Validate rejects negative counts.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"users":                    c.Users,
		"organizations":            c.Organizations,
		"offers":                   c.Offers,
		"max volunteers per offer": c.MaxVolunteersPerOffer,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, name, v)
		}
	}
	return nil
}
