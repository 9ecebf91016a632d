// internal/catalog/elasticsearch.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const defaultSearchSize = 1000

// ElasticsearchSource reads vendor documents from an index, ordered by the
// document's position field.
type ElasticsearchSource struct {
	client *elasticsearch.Client
	index  string
	size   int
}

func NewElasticsearchSource(client *elasticsearch.Client, index string) *ElasticsearchSource {
	return &ElasticsearchSource{client: client, index: index, size: defaultSearchSize}
}

func (s *ElasticsearchSource) Name() string { return "elasticsearch" }

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source models.Vendor `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *ElasticsearchSource) Vendors(ctx context.Context) ([]models.Vendor, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{"match_all": map[string]interface{}{}},
		"sort": []interface{}{
			map[string]interface{}{"position": map[string]interface{}{"order": "asc", "unmapped_type": "long"}},
			map[string]interface{}{"id": map[string]interface{}{"order": "asc", "unmapped_type": "keyword"}},
		},
	})
	if err != nil {
		return nil, errors.NewSearchQueryFailedError(s.index, err)
	}

	size := s.size
	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, errors.NewCatalogUnavailableError(s.Name(), err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.NewSearchQueryFailedError(s.index, fmt.Errorf("search failed: %s", res.String()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewSearchQueryFailedError(s.index, fmt.Errorf("decode response: %w", err))
	}

	vendors := make([]models.Vendor, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		vendors = append(vendors, hit.Source)
	}
	return normalize(vendors), nil
}
