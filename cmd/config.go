package cmd

import "time"

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	BarcodePrefix   string
	EventBufferSize int
	RetentionWindow time.Duration
	LogLevel        string
}
