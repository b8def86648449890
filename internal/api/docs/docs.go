// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/news_api/main.go -o internal/api/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/articles": {
            "get": {
                "tags": ["articles"],
                "summary": "List articles",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "description": "Comma separated tags", "name": "tags", "in": "query"},
                    {"type": "string", "name": "author", "in": "query"},
                    {"type": "boolean", "name": "featured", "in": "query"},
                    {"type": "boolean", "name": "trending", "in": "query"},
                    {"type": "boolean", "name": "published", "in": "query"},
                    {"enum": ["createdAt", "updatedAt", "views", "likes", "publishedAt"], "type": "string", "name": "sortBy", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "name": "sortOrder", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ArticlePage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "tags": ["articles"],
                "summary": "Create an article",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "X-User-Name", "in": "header"},
                    {"type": "string", "name": "X-User-Handle", "in": "header"},
                    {"name": "article", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateArticleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Article"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/articles/trending": {
            "get": {
                "tags": ["articles"],
                "summary": "Published trending articles",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}}}
            }
        },
        "/articles/featured": {
            "get": {
                "tags": ["articles"],
                "summary": "Published featured articles",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}}}
            }
        },
        "/articles/{idOrSlug}": {
            "get": {
                "tags": ["articles"],
                "summary": "Get an article by id or slug",
                "parameters": [{"type": "string", "name": "idOrSlug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Article"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/articles/{id}": {
            "patch": {
                "tags": ["articles"],
                "summary": "Partially update an article",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateArticleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Article"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["articles"],
                "summary": "Delete an article",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/articles/{id}/like": {
            "post": {
                "tags": ["engagement"],
                "summary": "Toggle the caller's like",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/LikeResult"}}}
            }
        },
        "/articles/{id}/bookmark": {
            "post": {
                "tags": ["engagement"],
                "summary": "Toggle the caller's bookmark",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/BookmarkResult"}}}
            }
        },
        "/articles/{id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List comment threads of an article",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            },
            "post": {
                "tags": ["comments"],
                "summary": "Comment on an article or reply to a top-level comment",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-Id", "in": "header", "required": true},
                    {"type": "string", "name": "X-User-Name", "in": "header", "required": true},
                    {"name": "comment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/authors/{id}/articles": {
            "get": {
                "tags": ["authors"],
                "summary": "Articles of an author, newest first",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "published", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Article"}}}}
            }
        },
        "/authors/{id}/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Aggregate stats of one author's articles",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/tags/popular": {
            "get": {
                "tags": ["stats"],
                "summary": "Most used tags",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        },
        "/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Aggregate stats of the whole corpus",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "title": {"type": "string"}}
        },
        "Article": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "excerpt": {"type": "string"},
                "content": {"type": "string"},
                "contentHtml": {"type": "string"},
                "published": {"type": "boolean"},
                "featured": {"type": "boolean"},
                "trending": {"type": "boolean"},
                "viewCount": {"type": "integer"},
                "likeCount": {"type": "integer"},
                "commentCount": {"type": "integer"},
                "readTime": {"type": "integer"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "isLiked": {"type": "boolean"},
                "isBookmarked": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "publishedAt": {"type": "string"}
            }
        },
        "ArticlePage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/Article"}},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasNext": {"type": "boolean"},
                "hasPrev": {"type": "boolean"}
            }
        },
        "CreateArticleRequest": {
            "type": "object",
            "required": ["title", "content"],
            "properties": {
                "title": {"type": "string", "maxLength": 300},
                "content": {"type": "string"},
                "excerpt": {"type": "string", "maxLength": 1000},
                "tags": {"type": "array", "items": {"type": "string"}},
                "published": {"type": "boolean"},
                "featured": {"type": "boolean"},
                "trending": {"type": "boolean"}
            }
        },
        "UpdateArticleRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 300},
                "content": {"type": "string"},
                "excerpt": {"type": "string", "maxLength": 1000},
                "tags": {"type": "array", "items": {"type": "string"}},
                "published": {"type": "boolean"},
                "featured": {"type": "boolean"},
                "trending": {"type": "boolean"}
            }
        },
        "CreateCommentRequest": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string", "maxLength": 5000},
                "parentId": {"type": "string"}
            }
        },
        "LikeResult": {
            "type": "object",
            "properties": {"liked": {"type": "boolean"}, "likes": {"type": "integer"}}
        },
        "BookmarkResult": {
            "type": "object",
            "properties": {"bookmarked": {"type": "boolean"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "News Press API",
	Description:      "Articles, engagement, comments and stats.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
