package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Offsets maps a country code to its UTC offset in hours. It is loaded from
// a JSON side file ({"PH": 8, "US": -5, ...}) maintained by operations.
type Offsets struct {
	byCountry map[string]int
}

// LoadOffsets reads the offsets file. A missing or unreadable file yields an
// empty table, not an error: a lookup miss means offset 0 everywhere.
func LoadOffsets(path string) *Offsets {
	o := &Offsets{byCountry: map[string]int{}}
	if path == "" {
		return o
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return o
	}
	for key := range v.AllSettings() {
		o.byCountry[strings.ToUpper(key)] = v.GetInt(key)
	}
	return o
}

// Get returns the UTC offset for a country, 0 when unknown.
func (o *Offsets) Get(country string) int {
	return o.byCountry[strings.ToUpper(country)]
}
