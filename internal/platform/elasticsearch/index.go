// File: internal/platform/elasticsearch/index.go
package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const CreatorPagesIndexName = "creator_pages"

func keywordSubfield() map[string]interface{} {
	return map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword", "ignore_above": 256}}
}

// creatorPagesMapping returns the JSON mapping for the creator pages index.
func creatorPagesMapping() (string, error) {
	mapping := map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"user_id":          map[string]interface{}{"type": "keyword"},
				"handle":           map[string]interface{}{"type": "keyword"},
				"title":            map[string]interface{}{"type": "text", "fields": keywordSubfield()},
				"tagline":          map[string]interface{}{"type": "text"},
				"bio":              map[string]interface{}{"type": "text"},
				"category":         map[string]interface{}{"type": "text", "fields": keywordSubfield()},
				"subcategory":      map[string]interface{}{"type": "text", "fields": keywordSubfield()},
				"avatar_url":       map[string]interface{}{"type": "keyword", "index": false},
				"supporters_count": map[string]interface{}{"type": "integer"},
				"total_raised":     map[string]interface{}{"type": "double"},
				"created_at":       map[string]interface{}{"type": "date"},
				"updated_at":       map[string]interface{}{"type": "date"},
			},
		},
	}
	b, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("error marshalling creator pages mapping to JSON: %w", err)
	}
	return string(b), nil
}

// CreateCreatorPagesIndexIfNotExists creates the creator pages index with its
// mapping unless it already exists.
func CreateCreatorPagesIndexIfNotExists(ctx context.Context, client *ESClientWrapper, logger *zap.Logger) error {
	log := logger.Named("elasticsearch_index_setup").With(zap.String("indexName", CreatorPagesIndexName))

	res, err := esapi.IndicesExistsRequest{Index: []string{CreatorPagesIndexName}}.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error checking if creator pages index exists", zap.Error(err))
		return fmt.Errorf("error checking if creator pages index exists: %w", err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		log.Info("Creator pages index already exists")
		return nil
	case http.StatusNotFound:
	default:
		log.Error("Unexpected status checking creator pages index", zap.String("status", res.Status()))
		return fmt.Errorf("error checking if creator pages index exists: status %s", res.Status())
	}

	mappingJSON, err := creatorPagesMapping()
	if err != nil {
		return err
	}

	createRes, err := esapi.IndicesCreateRequest{
		Index: CreatorPagesIndexName,
		Body:  strings.NewReader(mappingJSON),
	}.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error creating creator pages index", zap.Error(err))
		return fmt.Errorf("error creating creator pages index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		var errorBody map[string]interface{}
		if err := json.NewDecoder(createRes.Body).Decode(&errorBody); err != nil {
			log.Error("Failed to parse index creation error response body", zap.Error(err), zap.String("status", createRes.Status()))
		} else {
			log.Error("Failed to create creator pages index", zap.String("status", createRes.Status()), zap.Any("errorDetails", errorBody))
		}
		return fmt.Errorf("failed to create creator pages index: status %s", createRes.Status())
	}

	log.Info("Creator pages index created successfully")
	return nil
}
