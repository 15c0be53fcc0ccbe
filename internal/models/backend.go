package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// APISpec describes the backend HTTP API
type APISpec struct {
	APIVersion string                    `json:"api_version"`
	BaseURL    string                    `json:"base_url"`
	Endpoints  OrderedMap[EndpointGroup] `json:"endpoints"`
}

// EndpointGroup maps a route signature such as "POST /auth/login" to its endpoint
type EndpointGroup = OrderedMap[Endpoint]

// Endpoint describes a single API route
type Endpoint struct {
	Description string             `json:"description"`
	Query       OrderedMap[string] `json:"query,omitempty"`
	Body        *Payload           `json:"body,omitempty"`
	Response    OrderedMap[string] `json:"response,omitempty"`
	Events      []string           `json:"events,omitempty"`
}

// Payload is a request body shape. It is either a set of named fields or,
// for non-JSON bodies, a bare content type.
type Payload struct {
	Fields      OrderedMap[string]
	ContentType string
}

// MarshalJSON writes the content type as a string, or the fields as an object
func (p Payload) MarshalJSON() ([]byte, error) {
	if p.ContentType != "" {
		return encodeRaw(p.ContentType)
	}
	return p.Fields.MarshalJSON()
}

// UnmarshalJSON accepts either form written by MarshalJSON
func (p *Payload) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &p.ContentType)
	}
	return p.Fields.UnmarshalJSON(trimmed)
}

// SplitRoute splits a route signature into its method and path
func SplitRoute(signature string) (method, path string) {
	method, path, found := strings.Cut(signature, " ")
	if !found {
		return "", signature
	}
	return method, strings.TrimSpace(path)
}

// ServerConfig holds per-environment backend settings
type ServerConfig struct {
	Development Environment `json:"development"`
	Production  Environment `json:"production"`
}

// Environment is the backend configuration for one deployment target
type Environment struct {
	Database DatabaseConfig `json:"database"`
	AI       AIConfig       `json:"ai"`
	Auth     AuthConfig     `json:"auth"`
	Server   ServerSettings `json:"server"`
}

// DatabaseConfig is the knex connection block
type DatabaseConfig struct {
	Client           string      `json:"client"`
	Connection       string      `json:"connection"`
	UseNullAsDefault bool        `json:"useNullAsDefault,omitempty"`
	Pool             *PoolConfig `json:"pool,omitempty"`
}

// PoolConfig bounds the database connection pool
type PoolConfig struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AIConfig holds the AI provider settings
type AIConfig struct {
	OpenAI    AIProvider `json:"openai"`
	Anthropic AIProvider `json:"anthropic"`
}

// AIProvider configures a single model provider
type AIProvider struct {
	APIKey    string `json:"apiKey"`
	Model     string `json:"model"`
	MaxTokens int    `json:"maxTokens"`
}

// AuthConfig configures JWT issuance
type AuthConfig struct {
	JWTSecret              string `json:"jwtSecret"`
	JWTExpiration          string `json:"jwtExpiration"`
	RefreshTokenExpiration string `json:"refreshTokenExpiration"`
}

// ServerSettings configures the HTTP listener
type ServerSettings struct {
	Port       Port   `json:"port"`
	CorsOrigin string `json:"corsOrigin"`
}

// Port is either a fixed port number or an environment expression
type Port struct {
	Number int
	Expr   string
}

// MarshalJSON writes Expr when set, otherwise Number
func (p Port) MarshalJSON() ([]byte, error) {
	if p.Expr != "" {
		return encodeRaw(p.Expr)
	}
	return []byte(strconv.Itoa(p.Number)), nil
}

// UnmarshalJSON accepts a number or a string
func (p *Port) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		p.Number = 0
		return json.Unmarshal(trimmed, &p.Expr)
	}
	p.Expr = ""
	return json.Unmarshal(trimmed, &p.Number)
}

// String renders the port for display
func (p Port) String() string {
	if p.Expr != "" {
		return p.Expr
	}
	return strconv.Itoa(p.Number)
}

// Table maps a column name to its type and constraint description
type Table = OrderedMap[string]

// DatabaseSchema maps a table name to its columns
type DatabaseSchema = OrderedMap[Table]

const foreignKeyPrefix = "foreign key ->"

// ForeignKeys returns "column -> table.column" for each foreign key in table
func ForeignKeys(table Table) []string {
	var refs []string
	for _, col := range table {
		if !strings.HasPrefix(col.Value, foreignKeyPrefix) {
			continue
		}
		target := strings.TrimSpace(strings.TrimPrefix(col.Value, foreignKeyPrefix))
		if i := strings.Index(target, " "); i >= 0 {
			target = target[:i]
		}
		refs = append(refs, col.Key+" -> "+target)
	}
	return refs
}
