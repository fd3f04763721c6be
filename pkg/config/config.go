package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var (
	ServerURI      string // irc:// or ircs:// URI, first positional argument
	DefaultSyncURL string // default sync-server URL, second positional argument

	Nick        string
	RealName    string
	RejoinFile  string
	Charset     string
	InsecureTLS bool
	Verbose     bool

	DatabaseFile string
	APIAddr      string
)

// Load parses the command line and environment. Both positional
// arguments are required; everything else has a default.
func Load() {
	// .env only matters for local development, ignore if absent.
	_ = godotenv.Load()

	pflag.StringVarP(&Nick, "nick", "n", "slidebot", "IRC nickname")
	pflag.StringVar(&RealName, "name", "slide sync bot", "IRC real name")
	pflag.StringVarP(&RejoinFile, "rejoin-file", "r", os.Getenv("REJOIN_FILE"), "file the bot keeps its channel list in, for rejoining after a restart")
	pflag.StringVar(&Charset, "charset", "", "IANA charset of the IRC network, if not UTF-8")
	pflag.BoolVarP(&InsecureTLS, "insecure", "k", false, "skip TLS certificate verification for ircs://")
	pflag.BoolVarP(&Verbose, "verbose", "v", false, "verbose logging")
	pflag.StringVar(&DatabaseFile, "db-file", envOr("DATABASE_FILE", "slidebot.db"), "sqlite file for the delivery history")
	pflag.StringVar(&APIAddr, "api-addr", os.Getenv("API_ADDR"), "listen address for the REST status API (disabled if empty)")
	pflag.Parse()

	args := pflag.Args()
	if len(args) != 2 {
		log.Fatalf("usage: %s [options] <irc[s]://[user:pass@]host[:port][/channel]> <sync-server-url>", os.Args[0])
	}
	ServerURI = args[0]
	DefaultSyncURL = args[1]
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
