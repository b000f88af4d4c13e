package configuration

import (
	"fmt"
	"os"
	"strconv"

	"token-tool/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App     App     `json:"app"`
	Graph   Graph   `json:"graph"`
	Vault   Vault   `json:"vault"`
	OAuth   OAuth   `json:"oauth"`
	Display Display `json:"display"`
}

type App struct {
	Port        int    `json:"port"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

// Graph pins the Graph API version the whole tool talks to.
type Graph struct {
	Version string `json:"version"`
}

// Vault locates the JSON file backing the token vault.
type Vault struct {
	Path string `json:"path"`
}

// OAuth holds third-party platform OAuth client credentials
type OAuth struct {
	Facebook OAuthClient `json:"facebook"`
}

type OAuthClient struct {
	AppID       string `json:"appId"`
	AppSecret   string `json:"appSecret"`
	RedirectURI string `json:"redirectURI"`
}

// Display controls how timestamps are rendered in reports.
type Display struct {
	Timezone string `json:"timezone"`
}

var C Config

func init() {
	Reload()
}

// Reload re-reads the config file and re-applies env overrides. main calls it
// again after env files are loaded, since package init runs before them.
func Reload() {
	LoadConfig()
	initApp(&C)
	initDefaults(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10010
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10010
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			C.App.TLSEnabled = false
		}
	}
	if C.App.TLSCertFile == "" {
		C.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if C.App.TLSKeyFile == "" {
		C.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
}

func initDefaults(C *Config) {
	// App credentials may come from the environment (HF Secrets style) instead
	// of the config file; the environment wins when both are set.
	if v := os.Getenv("FB_APP_ID"); v != "" {
		C.OAuth.Facebook.AppID = v
	}
	if v := os.Getenv("FB_APP_SECRET"); v != "" {
		C.OAuth.Facebook.AppSecret = v
	}
	if v := os.Getenv("FB_REDIRECT_URI"); v != "" {
		C.OAuth.Facebook.RedirectURI = v
	}
	if v := os.Getenv("VAULT_PATH"); v != "" {
		C.Vault.Path = v
	}
	if C.Vault.Path == "" {
		C.Vault.Path = "token_vault.json"
	}
	if C.Graph.Version == "" {
		C.Graph.Version = "v19.0"
	}
	if C.Display.Timezone == "" {
		C.Display.Timezone = "Asia/Ho_Chi_Minh"
	}
	if C.OAuth.Facebook.AppSecret == "" {
		logger.GetLogger().Warn("Facebook app secret not set; exchange and debug calls will need it per request")
	}
}
