package config

import "os"

func IsDebug() bool {
	return os.Getenv("DOODLE_DEBUG") == "1"
}
