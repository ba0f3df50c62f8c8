// @title Real-Time Polling API
// @version 1.0
// @description Backend API for running a live poll session: one active poll, answer collection, and broadcast of ticks and results
package main

import (
	"github.com/spf13/viper"
	"github.com/yeshu2004/real-time-pooling/api"
	"github.com/yeshu2004/real-time-pooling/logging"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service
	service := api.NewServer(config)
	service.Start()
}
