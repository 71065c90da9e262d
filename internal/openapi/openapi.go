// Package openapi holds the API reference documents. The full document is
// restricted to developer accounts; the public one is filtered down to
// read-only operations.
package openapi

// Spec is a JSON-serializable OpenAPI 3.1 document fragment.
type Spec = map[string]any

const specVersion = "3.1.0"

var (
	transferTypeEnum   = []string{"FREE", "FOR_KOLOCOINS", "TRADE", "LOAN"}
	deliveryMethodEnum = []string{"SELF_PICKUP", "NOVA_POSHTA", "UKRPOSHTA"}
)

// Document returns the complete API reference, including mutating operations.
func Document(baseURL string) Spec {
	return Spec{
		"openapi": specVersion,
		"info": Spec{
			"title":       "Kolotebe API",
			"version":     "1.0.0",
			"description": "Kolotebe book sharing platform API. Share books for free, trade, loan, or exchange using Kolocoins (KLC). Members earn 1 KLC for every book they share.",
			"contact": Spec{
				"name":  "Kolotebe Support",
				"email": "support@kolotebe.org",
				"url":   "https://kolotebe.org",
			},
			"license": Spec{
				"name": "MIT",
				"url":  "https://opensource.org/licenses/MIT",
			},
		},
		"servers": servers(baseURL),
		"tags": []Spec{
			{"name": "Books", "description": "Operations for managing books in the library"},
			{"name": "Listings", "description": "Create and manage book listings for sharing"},
			{"name": "Upload", "description": "File upload operations for images"},
			{"name": "Authentication", "description": "User authentication and registration"},
		},
		"paths": Spec{
			"/api/books":           bookPaths(),
			"/api/listings":        listingPaths(),
			"/api/uploads":         uploadPaths(),
			"/api/auth/register":   registerPaths(),
			"/api/auth/check-user": checkUserPaths(),
		},
		"components": Spec{
			"schemas": Spec{
				"Book":    bookSchema(),
				"Listing": listingSchema(),
			},
		},
	}
}

// PublicDocument returns the read-only API reference served without
// authentication. Only GET operations survive the filter.
func PublicDocument(baseURL string) Spec {
	doc := Document(baseURL)
	doc["info"] = Spec{
		"title":       "Kolotebe Public API",
		"version":     "1.0.0",
		"description": "Read-only access to the Kolotebe book sharing platform. Browse books and available listings without authentication.",
		"contact": Spec{
			"name":  "Kolotebe Support",
			"email": "support@kolotebe.org",
		},
	}
	doc["tags"] = []Spec{
		{"name": "Books", "description": "Browse and search books in the library"},
		{"name": "Listings", "description": "View available book listings"},
	}
	doc["paths"] = extractPublicEndpoints(doc["paths"].(Spec))

	return doc
}

// extractPublicEndpoints keeps only the GET operations of each path and drops
// paths that end up with no operations at all.
func extractPublicEndpoints(paths Spec) Spec {
	public := Spec{}
	for path, rawOps := range paths {
		ops, ok := rawOps.(Spec)
		if !ok {
			continue
		}

		if get, ok := ops["get"]; ok {
			public[path] = Spec{"get": get}
		}
	}

	return public
}

func servers(baseURL string) []Spec {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return []Spec{
		{"url": baseURL, "description": "Production API Server"},
		{"url": "http://localhost:8080", "description": "Local Development Server"},
	}
}

func bookPaths() Spec {
	return Spec{
		"get": Spec{
			"summary":     "Search books",
			"description": "Search for books by title or author",
			"tags":        []string{"Books"},
			"parameters": []Spec{
				{
					"name":        "search",
					"in":          "query",
					"description": "Search query for book title or author",
					"required":    false,
					"schema":      Spec{"type": "string", "example": "George Orwell"},
				},
			},
			"responses": Spec{
				"200": Spec{"description": "List of matching books"},
			},
		},
		"post": Spec{
			"summary":     "Create a new book",
			"description": "Add a new book with its first physical copy",
			"tags":        []string{"Books"},
			"requestBody": Spec{
				"required": true,
				"content": Spec{
					"application/json": Spec{
						"schema": Spec{
							"type":     "object",
							"required": []string{"title", "author"},
							"properties": Spec{
								"title":           Spec{"type": "string", "example": "1984"},
								"author":          Spec{"type": "string", "example": "George Orwell"},
								"isbn":            Spec{"type": "string", "example": "978-0451524935"},
								"genre":           Spec{"type": "string", "example": "Fiction"},
								"publicationYear": Spec{"type": "integer", "example": 1949},
								"coverImage":      Spec{"type": "string", "format": "uri"},
								"description":     Spec{"type": "string"},
							},
						},
					},
				},
			},
			"responses": Spec{
				"200": Spec{"description": "Book created successfully"},
				"400": Spec{"description": "Bad request - validation error"},
				"401": Spec{"description": "Unauthorized - authentication required"},
			},
		},
	}
}

func listingPaths() Spec {
	return Spec{
		"get": Spec{
			"summary":     "Get available listings",
			"description": "Retrieve all active book listings available for sharing",
			"tags":        []string{"Listings"},
			"responses": Spec{
				"200": Spec{"description": "List of active listings"},
			},
		},
		"post": Spec{
			"summary":     "Create a new listing",
			"description": "Create a listing for a book copy",
			"tags":        []string{"Listings"},
			"requestBody": Spec{
				"required": true,
				"content": Spec{
					"application/json": Spec{
						"schema": Spec{
							"type":     "object",
							"required": []string{"bookCopyId", "transferTypes", "deliveryMethods"},
							"properties": Spec{
								"bookCopyId":  Spec{"type": "string"},
								"description": Spec{"type": "string"},
								"photos": Spec{
									"type":  "array",
									"items": Spec{"type": "string", "format": "uri"},
								},
								"transferTypes": Spec{
									"type":    "array",
									"items":   Spec{"type": "string", "enum": transferTypeEnum},
									"example": []string{"FREE", "FOR_KOLOCOINS"},
								},
								"deliveryMethods": Spec{
									"type":    "array",
									"items":   Spec{"type": "string", "enum": deliveryMethodEnum},
									"example": []string{"SELF_PICKUP", "NOVA_POSHTA"},
								},
								"pickupLocation": Spec{"type": "string"},
							},
						},
					},
				},
			},
			"responses": Spec{
				"200": Spec{"description": "Listing created successfully"},
				"400": Spec{"description": "Bad request"},
				"401": Spec{"description": "Unauthorized"},
			},
		},
	}
}

func uploadPaths() Spec {
	return Spec{
		"post": Spec{
			"summary":     "Upload an image",
			"description": "Upload book cover or listing photos",
			"tags":        []string{"Upload"},
			"requestBody": Spec{
				"required": true,
				"content": Spec{
					"multipart/form-data": Spec{
						"schema": Spec{
							"type":     "object",
							"required": []string{"file"},
							"properties": Spec{
								"file": Spec{"type": "string", "format": "binary"},
							},
						},
					},
				},
			},
			"responses": Spec{
				"200": Spec{"description": "File uploaded successfully"},
				"400": Spec{"description": "Bad request - invalid file"},
				"401": Spec{"description": "Unauthorized"},
			},
		},
	}
}

func registerPaths() Spec {
	return Spec{
		"post": Spec{
			"summary":     "Register a new user",
			"description": "Create a new user account with email and password",
			"tags":        []string{"Authentication"},
			"requestBody": Spec{
				"required": true,
				"content": Spec{
					"application/json": Spec{
						"schema": Spec{
							"type":     "object",
							"required": []string{"email", "password", "name"},
							"properties": Spec{
								"email":    Spec{"type": "string", "format": "email", "example": "user@example.com"},
								"password": Spec{"type": "string", "minLength": 6},
								"name":     Spec{"type": "string", "example": "John Doe"},
							},
						},
					},
				},
			},
			"responses": Spec{
				"200": Spec{"description": "User registered successfully"},
				"400": Spec{"description": "Bad request - user already exists"},
			},
		},
	}
}

func checkUserPaths() Spec {
	return Spec{
		"get": Spec{
			"summary":     "Check if user exists",
			"description": "Check if a user exists by email",
			"tags":        []string{"Authentication"},
			"parameters": []Spec{
				{
					"name":     "email",
					"in":       "query",
					"required": true,
					"schema":   Spec{"type": "string", "format": "email"},
				},
			},
			"responses": Spec{
				"200": Spec{"description": "User existence check result"},
			},
		},
	}
}

func bookSchema() Spec {
	return Spec{
		"type": "object",
		"properties": Spec{
			"id":              Spec{"type": "string"},
			"title":           Spec{"type": "string"},
			"author":          Spec{"type": "string"},
			"isbn":            Spec{"type": "string", "nullable": true},
			"genre":           Spec{"type": "string", "nullable": true},
			"publicationYear": Spec{"type": "integer", "nullable": true},
			"coverImage":      Spec{"type": "string", "format": "uri", "nullable": true},
			"description":     Spec{"type": "string", "nullable": true},
			"createdAt":       Spec{"type": "string", "format": "date-time"},
			"updatedAt":       Spec{"type": "string", "format": "date-time"},
		},
	}
}

func listingSchema() Spec {
	return Spec{
		"type": "object",
		"properties": Spec{
			"id":          Spec{"type": "string"},
			"slug":        Spec{"type": "string"},
			"status":      Spec{"type": "string", "enum": []string{"ACTIVE", "INACTIVE", "COMPLETED"}},
			"description": Spec{"type": "string", "nullable": true},
			"photos":      Spec{"type": "array", "items": Spec{"type": "string"}},
			"transferTypes": Spec{
				"type":  "array",
				"items": Spec{"type": "string", "enum": transferTypeEnum},
			},
			"deliveryMethods": Spec{
				"type":  "array",
				"items": Spec{"type": "string", "enum": deliveryMethodEnum},
			},
			"createdAt": Spec{"type": "string", "format": "date-time"},
		},
	}
}
