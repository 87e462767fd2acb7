// internal/store/indexer.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"esg-workers/internal/common/errors"
	"esg-workers/internal/esg/assess"
)

// AssessmentIndexer writes finished assessments into Elasticsearch so
// reporting dashboards can aggregate scores across companies and sectors.
type AssessmentIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewAssessmentIndexer(client *elasticsearch.Client, index string) *AssessmentIndexer {
	return &AssessmentIndexer{client: client, index: index}
}

// Index stores one assessment document keyed by assessment ID.
func (i *AssessmentIndexer) Index(ctx context.Context, companyID string, a assess.Assessment) error {
	doc := struct {
		assess.Assessment
		CompanyID string `json:"companyId"`
	}{Assessment: a, CompanyID: companyID}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode assessment document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: a.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewIndexingFailedError(i.index, fmt.Errorf("status %s", res.Status()))
	}
	return nil
}
