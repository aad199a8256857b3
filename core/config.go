package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	AppName  string
	Build    string

	Server struct {
		Host string
		Addr string
	}

	// LatencyScale multiplies the per-operation simulated latency of the
	// in-memory stores. 1 emulates real network round-trips, 0 disables
	// the delays entirely (tests).
	LatencyScale float64

	// FeeOverdueAfter is how long a student may stay fee-pending after
	// enrollment before the overdue sweep flags them.
	FeeOverdueAfter time.Duration

	FrontendBaseURL      string
	DefaultFromEmailAddr string
	DefaultFromName      string
	SendgridApiKey       string
	RollbarToken         string
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.DefaultFromName, Address: c.DefaultFromEmailAddr}
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "CoachDesk")
	v.SetDefault("build", "dev")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("latencyScale", 1.0)
	v.SetDefault("feeOverdueAfter", 30*24*time.Hour)
	v.SetDefault("frontendBaseUrl", "http://localhost:3000")
	v.SetDefault("defaultFromEmail", "accounts@localhost")
	v.SetDefault("defaultFromName", "CoachDesk Accounts")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("latencyScale", 0.0)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:                v.GetBool("debug"),
		TestMode:             v.GetBool("testMode"),
		Env:                  env,
		AppName:              v.GetString("appName"),
		Build:                v.GetString("build"),
		LatencyScale:         v.GetFloat64("latencyScale"),
		FeeOverdueAfter:      v.GetDuration("feeOverdueAfter"),
		FrontendBaseURL:      v.GetString("frontendBaseUrl"),
		DefaultFromEmailAddr: v.GetString("defaultFromEmail"),
		DefaultFromName:      v.GetString("defaultFromName"),
		SendgridApiKey:       v.GetString("sendgridApiKey"),
		RollbarToken:         v.GetString("rollbarToken"),
	}
	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Addr = v.GetString("serverAddr")
}
