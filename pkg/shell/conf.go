package shell

import (
	"io"
	"os"

	"github.com/scottcagno/storage/pkg/logger"
)

const defaultPrompt = "> "

// Config holds configuration settings for a Shell instance
type Config struct {
	Prompt     string         // printed before each line is read
	ShowPrompt bool           // print the prompt at all
	Stdin      io.Reader      // command input
	Stdout     io.Writer      // command output
	Stderr     io.Writer      // error output
	Logger     *logger.Logger // logger
}

func defaultConfig() *Config {
	return &Config{
		Prompt:     defaultPrompt,
		ShowPrompt: true,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Logger:     logger.DefaultLogger,
	}
}

// checkConfig is a helper to make sure the configuration
// options are correct and handles any missing options
func checkConfig(conf *Config) *Config {
	if conf == nil {
		return defaultConfig()
	}
	if conf.Prompt == *new(string) {
		conf.Prompt = defaultPrompt
	}
	if conf.Stdin == nil {
		conf.Stdin = os.Stdin
	}
	if conf.Stdout == nil {
		conf.Stdout = os.Stdout
	}
	if conf.Stderr == nil {
		conf.Stderr = os.Stderr
	}
	if conf.Logger == nil {
		conf.Logger = logger.DefaultLogger
	}
	return conf
}
