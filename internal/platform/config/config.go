package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	ListenAddr    string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string
	LogFile       string

	// Local API
	CORSAllowedOrigins []string
	RateLimit          string

	// Organization-specific carve-outs
	UrgencySortUsers []int64           // callers whose listing puts finished requests last
	ApproverAliases  map[int64][]int64 // caller -> extra approver identities they act for
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("LISTEN_ADDR", "127.0.0.1:8765")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "20-S")
	v.SetDefault("PAYMENTS_URGENCY_SORT_USERS", "")
	v.SetDefault("PAYMENTS_APPROVER_ALIASES", "")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:   v.GetString("PGSQL_URL"),
		ListenAddr:    v.GetString("LISTEN_ADDR"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFile:       v.GetString("LOG_FILE"),
		RateLimit:     v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:8765"
		log.Printf("Warning: LISTEN_ADDR not set. Defaulting to %s\n", cfg.ListenAddr)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	users, err := ParseUserIDs(v.GetString("PAYMENTS_URGENCY_SORT_USERS"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENTS_URGENCY_SORT_USERS: %w", err)
	}
	cfg.UrgencySortUsers = users

	aliases, err := ParseApproverAliases(v.GetString("PAYMENTS_APPROVER_ALIASES"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENTS_APPROVER_ALIASES: %w", err)
	}
	cfg.ApproverAliases = aliases

	return cfg, nil
}

// ParseUserIDs parses a comma separated list of user IDs, e.g. "42,81,75".
func ParseUserIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range splitList(s) {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("user id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseApproverAliases parses "caller:alias[|alias...]" pairs separated by
// commas, e.g. "24:9" or "24:9|11,30:31".
func ParseApproverAliases(s string) (map[int64][]int64, error) {
	aliases := make(map[int64][]int64)
	for _, pair := range splitList(s) {
		caller, rest, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("alias %q: expected caller:alias", pair)
		}
		callerID, err := strconv.ParseInt(strings.TrimSpace(caller), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", pair, err)
		}
		for _, a := range strings.Split(rest, "|") {
			aliasID, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("alias %q: %w", pair, err)
			}
			aliases[callerID] = append(aliases[callerID], aliasID)
		}
	}
	return aliases, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
