package instance

import "github.com/angelmondragon/shop-api/pkg/env"

// GetID returns the process instance identifier or a default value.
func GetID() string {
	return env.First("local", "SHOP_INSTANCE_ID", "DYNO", "HOSTNAME")
}
