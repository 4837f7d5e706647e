package config

import (
	"flag"
	"os"

	"github.com/RichiMaiden/menacor-vital/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the sync backend (default from Config)
//	-d string   path of the local database file (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendBaseURL, "a", cfg.BackendBaseURL, "base URL of the sync backend")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
