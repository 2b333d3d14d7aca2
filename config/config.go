package config

import (
	"strconv"
	"strings"

	"github.com/cleodb/godbc/diag"
)

// Defaults applied when a connection string leaves a setting out.
const (
	DefaultSchema   = "PUBLIC"
	DefaultPageSize = 1024
)

// Connection string keys, compared case-insensitively.
const (
	KeyAddress  = "address"
	KeySchema   = "schema"
	KeyPageSize = "page_size"
	KeyIdentity = "identity"
	KeySecret   = "secret"
)

// Configuration holds the driver's connection settings. Each field knows
// whether it was set explicitly, so callers can distinguish defaults
// from user intent.
type Configuration struct {
	Addresses Settable[[]EndPoint]
	Schema    Settable[string]
	PageSize  Settable[int32]
	Identity  Settable[string]
	Secret    Settable[string]
}

// NewConfiguration returns a configuration carrying the defaults.
func NewConfiguration() *Configuration {
	return &Configuration{
		Addresses: NewSettable[[]EndPoint](nil),
		Schema:    NewSettable(DefaultSchema),
		PageSize:  NewSettable[int32](DefaultPageSize),
		Identity:  NewSettable(""),
		Secret:    NewSettable(""),
	}
}

// ParseConnectionString fills the configuration from a key=value;...
// string. Unknown keys and unusable values raise diagnostics instead of
// errors, matching how drivers are expected to limp along.
func (c *Configuration) ParseConnectionString(connectStr string, diagnostics *diag.Storage) {
	for _, attr := range strings.Split(connectStr, ";") {
		attr = strings.TrimSpace(attr)
		if attr == "" {
			continue
		}
		eq := strings.IndexByte(attr, '=')
		if eq < 0 {
			if diagnostics != nil {
				diagnostics.AddStatusRecord(diag.StateOptionValueChanged,
					"Attribute without a value, ignoring: "+attr)
			}
			continue
		}
		key := strings.ToLower(strings.TrimSpace(attr[:eq]))
		value := strings.TrimSpace(attr[eq+1:])
		c.applyAttribute(key, value, diagnostics)
	}
}

func (c *Configuration) applyAttribute(key, value string, diagnostics *diag.Storage) {
	switch key {
	case KeyAddress:
		eps := ParseAddress(value, diagnostics)
		if len(eps) > 0 {
			c.Addresses.Set(eps)
		}
	case KeySchema:
		c.Schema.Set(value)
	case KeyPageSize:
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil || n <= 0 {
			if diagnostics != nil {
				diagnostics.AddStatusRecord(diag.StateOptionValueChanged,
					"Invalid page size, using default: "+value)
			}
			return
		}
		c.PageSize.Set(int32(n))
	case KeyIdentity:
		c.Identity.Set(value)
	case KeySecret:
		c.Secret.Set(value)
	default:
		if diagnostics != nil {
			diagnostics.AddStatusRecord(diag.StateGeneralWarning,
				"Unknown attribute, ignoring: "+key)
		}
	}
}

// ConnectionString renders the explicitly set values back into the
// key=value form.
func (c *Configuration) ConnectionString() string {
	var parts []string
	if c.Addresses.IsSet() {
		parts = append(parts, KeyAddress+"="+AddressesToString(c.Addresses.Get()))
	}
	if c.Schema.IsSet() {
		parts = append(parts, KeySchema+"="+c.Schema.Get())
	}
	if c.PageSize.IsSet() {
		parts = append(parts, KeyPageSize+"="+strconv.Itoa(int(c.PageSize.Get())))
	}
	if c.Identity.IsSet() {
		parts = append(parts, KeyIdentity+"="+c.Identity.Get())
	}
	if c.Secret.IsSet() {
		parts = append(parts, KeySecret+"="+c.Secret.Get())
	}
	return strings.Join(parts, ";")
}
