package importer

import (
	"fmt"
	"log/slog"

	"github.com/atripati/altetudegear/domain"
	"github.com/atripati/altetudegear/store"
)

// RecordError reports every reason one input record was rejected, keyed by
// its original position in the batch.
type RecordError struct {
	Index  int      `json:"index"`
	Errors []string `json:"errors"`
}

// Result is the per-batch import report. Accepted records are counted but
// not listed; Errors preserves input order by index.
type Result struct {
	SuccessCount int           `json:"successCount"`
	Errors       []RecordError `json:"errors"`
}

// Importer runs the bulk import pipeline against a catalog store.
type Importer struct {
	store *store.Store
}

// New constructs an Importer writing to s.
func New(s *store.Store) *Importer {
	return &Importer{store: s}
}

// Import processes raw partial records in order: normalize, check the slug
// and id against everything already taken (base catalog, stored custom
// products, records accepted earlier in this batch), then validate.
// Accepted records are committed in a single storage write after the whole
// batch is processed; rejected records never touch storage. A failed commit
// is returned as an error and the result reports zero successes, so callers
// never see records as imported that were not durably written.
func (imp *Importer) Import(partials []domain.PartialProduct) (Result, error) {
	var res Result
	if len(partials) == 0 {
		res.Errors = append(res.Errors, RecordError{
			Index:  0,
			Errors: []string{"No products found in the provided data."},
		})
		return res, nil
	}

	takenSlugs := make(map[string]struct{})
	takenIDs := make(map[string]struct{})
	for _, p := range imp.store.Base() {
		takenSlugs[p.Slug] = struct{}{}
		takenIDs[p.ID] = struct{}{}
	}
	for _, p := range imp.store.Custom() {
		takenSlugs[p.Slug] = struct{}{}
		takenIDs[p.ID] = struct{}{}
	}

	var accepted []domain.Product
	for i, partial := range partials {
		product := Normalize(partial, i)

		var recordErrs []string
		if _, taken := takenSlugs[product.Slug]; taken {
			recordErrs = []string{domain.NewSlugConflictError(product.Slug).Error()}
		} else if _, taken := takenIDs[product.ID]; taken {
			recordErrs = []string{domain.NewIDConflictError(product.ID).Error()}
		} else if result := domain.Validate(product); !result.Valid {
			recordErrs = result.Errors
		}

		if len(recordErrs) > 0 {
			res.Errors = append(res.Errors, RecordError{Index: i, Errors: recordErrs})
			continue
		}

		accepted = append(accepted, product)
		takenSlugs[product.Slug] = struct{}{}
		takenIDs[product.ID] = struct{}{}
	}

	res.SuccessCount = len(accepted)
	if len(accepted) > 0 {
		if err := imp.store.MergeCustom(accepted); err != nil {
			res.SuccessCount = 0
			return res, fmt.Errorf("persist imported products: %w", err)
		}
	}

	slog.Debug("import batch processed",
		"input", len(partials),
		"accepted", res.SuccessCount,
		"rejected", len(res.Errors),
	)
	return res, nil
}
