// Package application contains the use cases of fakedata.
package application

import (
	"time"

	"github.com/go-arrower/fakedata/alog"
	"github.com/go-arrower/fakedata/app"
	"github.com/go-arrower/fakedata/storage"
)

type DatasetApplication struct {
	GenerateDataset app.Request[GenerateDatasetRequest, GenerateDatasetResponse]
	ListFields      app.Query[ListFieldsQuery, ListFieldsResponse]
}

// NewDatasetApplication wires all use cases with their decorators.
// If now is nil, time.Now is used.
func NewDatasetApplication(logger alog.Logger, store storage.Storage, now func() time.Time) DatasetApplication {
	return DatasetApplication{
		GenerateDataset: app.NewLoggedRequest(logger, NewGenerateDatasetRequestHandler(logger, store, now)),
		ListFields:      app.NewLoggedQuery(logger, NewListFieldsQueryHandler()),
	}
}
