// File: internal/search/service.go

// Package search indexes creator pages in Elasticsearch and answers the
// public creator search. It is optional: without a client every query
// reports the service as unavailable and indexing is a no-op.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"creator_support_backend/internal/common"
	"creator_support_backend/internal/creatorpage"
	platformElasticsearch "creator_support_backend/internal/platform/elasticsearch"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// ErrSearchDisabled is returned by Search when no cluster is configured.
var ErrSearchDisabled = common.ErrServiceUnavailable.WithDetails("Creator search is not configured.")

// Query is a creator search request. Category is a display label, e.g. "Animals".
type Query struct {
	Text     string
	Category string
	Page     int
	PageSize int
}

// Hit is one matching creator page.
type Hit struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	Handle          string  `json:"handle"`
	Title           string  `json:"title"`
	Tagline         string  `json:"tagline"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	AvatarURL       string  `json:"avatar_url"`
	SupportersCount int     `json:"supporters_count"`
	TotalRaised     float64 `json:"total_raised"`
	Score           float64 `json:"score"`
}

// SyncResult counts the outcome of a reindex run.
type SyncResult struct {
	Synced int
	Failed int
}

// PageBatcher streams every stored page in batches.
type PageBatcher interface {
	FindInBatches(ctx context.Context, batchSize int, fn func(batch []creatorpage.CreatorPage) error) error
}

// Service is the creator search.
type Service struct {
	client *platformElasticsearch.ESClientWrapper
	logger *zap.Logger
}

// NewService creates the search service. client may be nil.
func NewService(client *platformElasticsearch.ESClientWrapper, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger.Named("search")}
}

// Enabled reports whether a cluster is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.client != nil
}

// IndexPage writes one page document, keyed by the page id.
func (s *Service) IndexPage(ctx context.Context, p *creatorpage.CreatorPage) error {
	if !s.Enabled() {
		return nil
	}
	doc, err := PageToDocument(p)
	if err != nil {
		return err
	}
	res, err := esapi.IndexRequest{
		Index:      platformElasticsearch.CreatorPagesIndexName,
		DocumentID: p.ID.String(),
		Body:       strings.NewReader(doc),
	}.Do(ctx, s.client.Client)
	if err != nil {
		return fmt.Errorf("indexing creator page %s: %w", p.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("indexing creator page %s: status %s", p.ID, res.Status())
	}
	s.logger.Debug("Creator page indexed", zap.String("pageID", p.ID.String()), zap.String("handle", p.Handle))
	return nil
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string       `json:"_id"`
			Score  float64      `json:"_score"`
			Source pageDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a fuzzy full-text query over title, handle, tagline, bio and
// the category labels, optionally filtered to one category.
func (s *Service) Search(ctx context.Context, q Query) ([]Hit, *common.Pagination, error) {
	if !s.Enabled() {
		return nil, nil, ErrSearchDisabled
	}
	if q.Page < 1 {
		q.Page = common.DefaultPage
	}
	if q.PageSize < 1 || q.PageSize > common.MaxPageSize {
		q.PageSize = common.DefaultPageSize
	}

	boolQuery := map[string]interface{}{
		"must": []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":     q.Text,
					"fields":    []string{"title^3", "handle^2", "tagline", "bio", "category", "subcategory"},
					"fuzziness": "AUTO",
				},
			},
		},
	}
	if q.Category != "" {
		boolQuery["filter"] = []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"category.keyword": q.Category}},
		}
	}
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("encoding search query: %w", err)
	}

	from := common.Offset(q.Page, q.PageSize)
	size := q.PageSize
	res, err := esapi.SearchRequest{
		Index: []string{platformElasticsearch.CreatorPagesIndexName},
		Body:  bytes.NewReader(body),
		From:  &from,
		Size:  &size,
	}.Do(ctx, s.client.Client)
	if err != nil {
		s.logger.Error("Search request failed", zap.Error(err))
		return nil, nil, fmt.Errorf("searching creator pages: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		s.logger.Error("Search returned an error", zap.String("status", res.Status()))
		return nil, nil, fmt.Errorf("searching creator pages: status %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, nil, fmt.Errorf("decoding search response: %w", err)
	}

	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		d := h.Source
		hits = append(hits, Hit{
			ID:              h.ID,
			UserID:          d.UserID,
			Handle:          d.Handle,
			Title:           d.Title,
			Tagline:         d.Tagline,
			Category:        d.Category,
			Subcategory:     d.Subcategory,
			AvatarURL:       d.AvatarURL,
			SupportersCount: d.SupportersCount,
			TotalRaised:     d.TotalRaised,
			Score:           h.Score,
		})
	}
	return hits, common.NewPagination(parsed.Hits.Total.Value, q.Page, q.PageSize), nil
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []struct {
		Index struct {
			ID     string                 `json:"_id"`
			Status int                    `json:"status"`
			Error  map[string]interface{} `json:"error,omitempty"`
		} `json:"index"`
	} `json:"items"`
}

// Reindex pushes every stored page to the index with the bulk API. A failed
// batch is counted and skipped; the run returns an error when anything failed.
func (s *Service) Reindex(ctx context.Context, pages PageBatcher, batchSize int, refresh string) (SyncResult, error) {
	var result SyncResult
	if !s.Enabled() {
		return result, ErrSearchDisabled
	}
	s.logger.Info("Starting creator page reindex", zap.Int("batchSize", batchSize), zap.String("refreshPolicy", refresh))

	batchNumber := 0
	err := pages.FindInBatches(ctx, batchSize, func(batch []creatorpage.CreatorPage) error {
		batchNumber++
		synced, failed := s.indexBatch(ctx, batch, refresh, batchNumber)
		result.Synced += synced
		result.Failed += failed
		s.logger.Info("Batch processed",
			zap.Int("batchNumber", batchNumber),
			zap.Int("syncedInBatch", synced),
			zap.Int("failedInBatch", failed),
		)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("reading creator pages: %w", err)
	}

	s.logger.Info("Creator page reindex finished", zap.Int("synced", result.Synced), zap.Int("failed", result.Failed))
	if result.Failed > 0 {
		return result, fmt.Errorf("%d creator pages failed to index", result.Failed)
	}
	return result, nil
}

func (s *Service) indexBatch(ctx context.Context, batch []creatorpage.CreatorPage, refresh string, batchNumber int) (synced, failed int) {
	var body strings.Builder
	docs := 0
	for i := range batch {
		p := &batch[i]
		doc, err := PageToDocument(p)
		if err != nil {
			s.logger.Error("Failed to convert creator page to document", zap.String("pageID", p.ID.String()), zap.Error(err))
			failed++
			continue
		}
		fmt.Fprintf(&body, `{"index":{"_index":"%s","_id":"%s"}}`+"\n", platformElasticsearch.CreatorPagesIndexName, p.ID.String())
		body.WriteString(doc)
		body.WriteString("\n")
		docs++
	}
	if docs == 0 {
		return synced, failed
	}

	res, err := esapi.BulkRequest{
		Body:    strings.NewReader(body.String()),
		Refresh: refresh,
	}.Do(ctx, s.client.Client)
	if err != nil {
		s.logger.Error("Failed to send bulk request to Elasticsearch", zap.Error(err), zap.Int("batchNumber", batchNumber))
		return synced, failed + docs
	}
	defer res.Body.Close()

	if res.IsError() {
		s.logger.Error("Elasticsearch bulk request returned an error", zap.String("status", res.Status()), zap.Int("batchNumber", batchNumber))
		return synced, failed + docs
	}

	var parsed bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		s.logger.Error("Failed to parse Elasticsearch bulk response body", zap.Error(err), zap.Int("batchNumber", batchNumber))
		return synced, failed + docs
	}
	for _, item := range parsed.Items {
		if item.Index.Error != nil {
			s.logger.Error("Failed to index document in bulk batch",
				zap.String("pageID", item.Index.ID),
				zap.Any("error", item.Index.Error),
				zap.Int("status", item.Index.Status),
			)
			failed++
			continue
		}
		synced++
	}
	return synced, failed
}
