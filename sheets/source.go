package sheets

import (
	"context"
	"net/http"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const metadataFields = "sheets.properties"

// API is the subset of the spreadsheet service that we use.
//go:generate mockgen -source source.go -destination=mocks/source.go -package=mocks
type API interface {
	// Values reads a range in A1 notation, row by row.
	Values(ctx context.Context, resource, a1Range string) (*sheetsapi.ValueRange, error)
	// Spreadsheet reads the sheet properties of a spreadsheet.
	Spreadsheet(ctx context.Context, resource string) (*sheetsapi.Spreadsheet, error)
}

type service struct {
	svc *sheetsapi.Service
}

// NewAPI creates an API on top of the given client.
// The client is responsible for authentication, see requests.NewClient.
// An empty endpoint uses the public service.
func NewAPI(ctx context.Context, client *http.Client, endpoint string) (API, error) {
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &service{svc: svc}, nil
}

func (s *service) Values(ctx context.Context, resource, a1Range string) (*sheetsapi.ValueRange, error) {
	return s.svc.Spreadsheets.Values.
		Get(resource, a1Range).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
}

func (s *service) Spreadsheet(ctx context.Context, resource string) (*sheetsapi.Spreadsheet, error) {
	return s.svc.Spreadsheets.
		Get(resource).
		Fields(metadataFields).
		Context(ctx).
		Do()
}
