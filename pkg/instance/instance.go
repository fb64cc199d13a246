package instance

import "os"

// GetID returns the identifier for this process, used to tag worker logs.
func GetID() string {
	if id := os.Getenv("HOTELIER_INSTANCE_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
