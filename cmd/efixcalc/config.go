package main

import "fmt"
import "os"
import "runtime"

import "gopkg.in/yaml.v3"

// config holds the settings that can be given in a YAML file through
// --config. Command line flags take precedence over the file.
type config struct {
	Width   int  `yaml:"width"`   // 32, 64 or 128
	Raw     bool `yaml:"raw"`     // print raw bits in hex instead of decimal
	Workers int  `yaml:"workers"` // batch mode concurrency
}

func defaultConfig() config {
	return config{ Width: 64, Workers: runtime.NumCPU() }
}

func loadConfig(filename string) (config, error) {
	conf := defaultConfig()
	if filename == "" { return conf, nil }

	data, err := os.ReadFile(filename)
	if err != nil { return conf, err }
	err = yaml.Unmarshal(data, &conf)
	if err != nil { return conf, fmt.Errorf("config %s: %w", filename, err) }
	err = conf.validate()
	return conf, err
}

func (self *config) validate() error {
	switch self.Width {
	case 32, 64, 128:
	default:
		return fmt.Errorf("invalid width %d (expected 32, 64 or 128)", self.Width)
	}
	if self.Workers < 1 { self.Workers = 1 }
	return nil
}
