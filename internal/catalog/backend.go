package catalog

import "kortex-pack/internal/models"

type fields = models.OrderedMap[string]

func body(f fields) *models.Payload {
	return &models.Payload{Fields: f}
}

// BackendAPI returns the REST and WebSocket surface of the backend
func BackendAPI() *models.APISpec {
	return &models.APISpec{
		APIVersion: "1.0.0",
		BaseURL:    "http://localhost:3001/api",
		Endpoints: models.OrderedMap[models.EndpointGroup]{
			{Key: "authentication", Value: models.EndpointGroup{
				{Key: "POST /auth/login", Value: models.Endpoint{
					Description: "User login with email/password",
					Body:        body(fields{{Key: "email", Value: "string"}, {Key: "password", Value: "string"}}),
					Response:    fields{{Key: "token", Value: "string"}, {Key: "user", Value: "object"}},
				}},
				{Key: "POST /auth/register", Value: models.Endpoint{
					Description: "User registration",
					Body:        body(fields{{Key: "email", Value: "string"}, {Key: "password", Value: "string"}, {Key: "name", Value: "string"}}),
					Response:    fields{{Key: "token", Value: "string"}, {Key: "user", Value: "object"}},
				}},
				{Key: "POST /auth/refresh", Value: models.Endpoint{
					Description: "Refresh JWT token",
					Body:        body(fields{{Key: "refreshToken", Value: "string"}}),
					Response:    fields{{Key: "token", Value: "string"}},
				}},
			}},
			{Key: "documents", Value: models.EndpointGroup{
				{Key: "GET /documents", Value: models.Endpoint{
					Description: "Get all user documents",
					Query:       fields{{Key: "folder", Value: "string"}, {Key: "tags", Value: "array"}, {Key: "search", Value: "string"}},
					Response:    fields{{Key: "documents", Value: "array"}, {Key: "total", Value: "number"}},
				}},
				{Key: "POST /documents", Value: models.Endpoint{
					Description: "Create new document",
					Body:        body(fields{{Key: "title", Value: "string"}, {Key: "content", Value: "string"}, {Key: "type", Value: "string"}, {Key: "tags", Value: "array"}}),
					Response:    fields{{Key: "document", Value: "object"}},
				}},
				{Key: "PUT /documents/:id", Value: models.Endpoint{
					Description: "Update document",
					Body:        body(fields{{Key: "title", Value: "string"}, {Key: "content", Value: "string"}, {Key: "tags", Value: "array"}}),
					Response:    fields{{Key: "document", Value: "object"}},
				}},
				{Key: "DELETE /documents/:id", Value: models.Endpoint{
					Description: "Delete document",
					Response:    fields{{Key: "success", Value: "boolean"}},
				}},
			}},
			{Key: "ai", Value: models.EndpointGroup{
				{Key: "POST /ai/chat", Value: models.Endpoint{
					Description: "Send message to AI assistant",
					Body:        body(fields{{Key: "message", Value: "string"}, {Key: "context", Value: "array"}, {Key: "model", Value: "string"}}),
					Response:    fields{{Key: "response", Value: "string"}, {Key: "usage", Value: "object"}},
				}},
				{Key: "POST /ai/generate", Value: models.Endpoint{
					Description: "Generate content using AI",
					Body:        body(fields{{Key: "prompt", Value: "string"}, {Key: "type", Value: "string"}, {Key: "context", Value: "array"}}),
					Response:    fields{{Key: "content", Value: "string"}, {Key: "usage", Value: "object"}},
				}},
				{Key: "GET /ai/models", Value: models.Endpoint{
					Description: "Get available AI models",
					Response:    fields{{Key: "models", Value: "array"}},
				}},
			}},
			{Key: "projects", Value: models.EndpointGroup{
				{Key: "GET /projects", Value: models.Endpoint{
					Description: "Get all user projects",
					Response:    fields{{Key: "projects", Value: "array"}},
				}},
				{Key: "POST /projects", Value: models.Endpoint{
					Description: "Create new project",
					Body:        body(fields{{Key: "name", Value: "string"}, {Key: "description", Value: "string"}, {Key: "type", Value: "string"}}),
					Response:    fields{{Key: "project", Value: "object"}},
				}},
				{Key: "PUT /projects/:id", Value: models.Endpoint{
					Description: "Update project",
					Body:        body(fields{{Key: "name", Value: "string"}, {Key: "description", Value: "string"}, {Key: "tasks", Value: "array"}}),
					Response:    fields{{Key: "project", Value: "object"}},
				}},
			}},
			{Key: "assets", Value: models.EndpointGroup{
				{Key: "GET /assets", Value: models.Endpoint{
					Description: "Get all user assets",
					Query:       fields{{Key: "type", Value: "string"}, {Key: "search", Value: "string"}},
					Response:    fields{{Key: "assets", Value: "array"}},
				}},
				{Key: "POST /assets/upload", Value: models.Endpoint{
					Description: "Upload new asset",
					Body:        &models.Payload{ContentType: "multipart/form-data"},
					Response:    fields{{Key: "asset", Value: "object"}, {Key: "url", Value: "string"}},
				}},
				{Key: "DELETE /assets/:id", Value: models.Endpoint{
					Description: "Delete asset",
					Response:    fields{{Key: "success", Value: "boolean"}},
				}},
			}},
			{Key: "collaboration", Value: models.EndpointGroup{
				{Key: "GET /collaboration/rooms", Value: models.Endpoint{
					Description: "Get user's collaboration rooms",
					Response:    fields{{Key: "rooms", Value: "array"}},
				}},
				{Key: "POST /collaboration/rooms", Value: models.Endpoint{
					Description: "Create collaboration room",
					Body:        body(fields{{Key: "name", Value: "string"}, {Key: "documentId", Value: "string"}, {Key: "members", Value: "array"}}),
					Response:    fields{{Key: "room", Value: "object"}},
				}},
				{Key: "WebSocket /collaboration/rooms/:id", Value: models.Endpoint{
					Description: "Real-time collaboration socket",
					Events:      []string{"document-change", "cursor-move", "user-join", "user-leave"},
				}},
			}},
		},
	}
}

func aiProviders() models.AIConfig {
	return models.AIConfig{
		OpenAI: models.AIProvider{
			APIKey:    "process.env.OPENAI_API_KEY",
			Model:     "gpt-4",
			MaxTokens: 4000,
		},
		Anthropic: models.AIProvider{
			APIKey:    "process.env.ANTHROPIC_API_KEY",
			Model:     "claude-3-sonnet-20240229",
			MaxTokens: 3000,
		},
	}
}

func authSettings() models.AuthConfig {
	return models.AuthConfig{
		JWTSecret:              "process.env.JWT_SECRET",
		JWTExpiration:          "24h",
		RefreshTokenExpiration: "7d",
	}
}

// ServerConfig returns the development and production backend settings
func ServerConfig() *models.ServerConfig {
	return &models.ServerConfig{
		Development: models.Environment{
			Database: models.DatabaseConfig{
				Client:           "sqlite3",
				Connection:       "./data/dev.db",
				UseNullAsDefault: true,
			},
			AI:   aiProviders(),
			Auth: authSettings(),
			Server: models.ServerSettings{
				Port:       models.Port{Number: 3001},
				CorsOrigin: "http://localhost:5173",
			},
		},
		Production: models.Environment{
			Database: models.DatabaseConfig{
				Client:     "postgresql",
				Connection: "process.env.DATABASE_URL",
				Pool:       &models.PoolConfig{Min: 2, Max: 10},
			},
			AI:   aiProviders(),
			Auth: authSettings(),
			Server: models.ServerSettings{
				Port:       models.Port{Expr: "process.env.PORT || 3001"},
				CorsOrigin: "process.env.FRONTEND_URL",
			},
		},
	}
}

// DatabaseSchema returns the descriptive table layout of the backend database
func DatabaseSchema() models.DatabaseSchema {
	return models.DatabaseSchema{
		{Key: "users", Value: models.Table{
			{Key: "id", Value: "primary key"},
			{Key: "email", Value: "string unique"},
			{Key: "password", Value: "string hashed"},
			{Key: "name", Value: "string"},
			{Key: "avatar", Value: "string optional"},
			{Key: "preferences", Value: "json"},
			{Key: "created_at", Value: "timestamp"},
			{Key: "updated_at", Value: "timestamp"},
		}},
		{Key: "documents", Value: models.Table{
			{Key: "id", Value: "primary key"},
			{Key: "user_id", Value: "foreign key -> users.id"},
			{Key: "title", Value: "string"},
			{Key: "content", Value: "text"},
			{Key: "type", Value: "string (markdown, text, etc)"},
			{Key: "folder_path", Value: "string"},
			{Key: "tags", Value: "json array"},
			{Key: "metadata", Value: "json"},
			{Key: "created_at", Value: "timestamp"},
			{Key: "updated_at", Value: "timestamp"},
		}},
		{Key: "projects", Value: models.Table{
			{Key: "id", Value: "primary key"},
			{Key: "user_id", Value: "foreign key -> users.id"},
			{Key: "name", Value: "string"},
			{Key: "description", Value: "text"},
			{Key: "type", Value: "string"},
			{Key: "status", Value: "string"},
			{Key: "data", Value: "json (tasks, timeline, etc)"},
			{Key: "created_at", Value: "timestamp"},
			{Key: "updated_at", Value: "timestamp"},
		}},
		{Key: "assets", Value: models.Table{
			{Key: "id", Value: "primary key"},
			{Key: "user_id", Value: "foreign key -> users.id"},
			{Key: "filename", Value: "string"},
			{Key: "original_name", Value: "string"},
			{Key: "mime_type", Value: "string"},
			{Key: "size", Value: "integer"},
			{Key: "url", Value: "string"},
			{Key: "folder_path", Value: "string"},
			{Key: "metadata", Value: "json"},
			{Key: "created_at", Value: "timestamp"},
		}},
		{Key: "ai_conversations", Value: models.Table{
			{Key: "id", Value: "primary key"},
			{Key: "user_id", Value: "foreign key -> users.id"},
			{Key: "document_id", Value: "foreign key -> documents.id optional"},
			{Key: "messages", Value: "json array"},
			{Key: "model_used", Value: "string"},
			{Key: "tokens_used", Value: "integer"},
			{Key: "created_at", Value: "timestamp"},
		}},
		{Key: "collaboration_rooms", Value: models.Table{
			{Key: "id", Value: "primary key"},
			{Key: "document_id", Value: "foreign key -> documents.id"},
			{Key: "owner_id", Value: "foreign key -> users.id"},
			{Key: "name", Value: "string"},
			{Key: "members", Value: "json array"},
			{Key: "settings", Value: "json"},
			{Key: "created_at", Value: "timestamp"},
		}},
	}
}
