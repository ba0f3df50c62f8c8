package api

import (
	"sync"

	"github.com/spf13/viper"
	"github.com/yeshu2004/real-time-pooling/logging"
)

type Config struct {
	StorageConfig
	ServerConfig
	SessionConfig
}

type StorageConfig struct {
	Driver              string
	TableNameIdentities string
	TableNamePolls      string
	TableNameAnswers    string
}

type ServerConfig struct {
	Port int
}

type SessionConfig struct {
	TickIntervalMS int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:              getStringOrDefault("storage.driver", "dynamo"),
			TableNameIdentities: viper.GetString("storage.TableNameIdentities"),
			TableNamePolls:      viper.GetString("storage.TableNamePolls"),
			TableNameAnswers:    viper.GetString("storage.TableNameAnswers"),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		SessionConfig: SessionConfig{
			TickIntervalMS: getIntOrDefault("session.tickIntervalMs", 1000),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
