// Package loader builds a core.Graph from tabular (CSV) or document (JSON)
// sources and writes graphs back out as JSON.
//
// Errors:
//
//	ErrBadColumns        - ColumnMap failed validation or the CSV header lacks a required column.
//	ErrBadRow            - a CSV row or JSON node could not be turned into a node.
//	ErrBadEdge           - a JSON edge is missing an endpoint.
//	ErrUnknownNeighbor   - an edge references an ID that is not a node.
//	ErrUnsupportedFormat - LoadFile cannot infer the format from the extension.
package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/sociograph/weight"
)

var (
	// ErrBadColumns indicates an invalid column mapping.
	ErrBadColumns = errors.New("loader: invalid column mapping")

	// ErrBadRow indicates a record that cannot be converted into a node.
	ErrBadRow = errors.New("loader: malformed row")

	// ErrBadEdge indicates an edge record without both endpoints.
	ErrBadEdge = errors.New("loader: malformed edge")

	// ErrUnknownNeighbor indicates an edge endpoint that is not a loaded node.
	ErrUnknownNeighbor = errors.New("loader: neighbor is not a known node")

	// ErrUnsupportedFormat indicates a file extension other than .csv or .json.
	ErrUnsupportedFormat = errors.New("loader: unsupported file format")
)

// Supported formats, as accepted by LoadFile and config.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var validate = validator.New()

// ColumnMap tells ReadCSV which header names hold which node fields.
// Empty optional fields mean "not present in this file".
type ColumnMap struct {
	NodeID          string `yaml:"node_id" validate:"required"`
	Name            string `yaml:"name"`
	Activity        string `yaml:"activity"`
	Interaction     string `yaml:"interaction"`
	ConnectionCount string `yaml:"connection_count"`
	Neighbors       string `yaml:"neighbors" validate:"required"`

	// Extras maps an attribute name to a header name. Numeric cells land in
	// Node.Extras, anything else in Node.Labels.
	Extras map[string]string `yaml:"extras" validate:"omitempty,dive,keys,required,endkeys,required"`
}

// DefaultColumns are the headers of the reference social network exports.
var DefaultColumns = ColumnMap{
	NodeID:          "DugumId",
	Activity:        "Aktiflik",
	Interaction:     "Etkilesim",
	ConnectionCount: "Baglanti",
	Neighbors:       "Komsular",
}

// Validate reports a missing required column as ErrBadColumns.
func (c ColumnMap) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrBadColumns, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrBadColumns, err)
	}

	return nil
}

// Options configures a load.
type Options struct {
	WeightFunc weight.Func
	Columns    ColumnMap
	Logger     *zap.Logger
	Validate   bool
}

// Option is a functional option for the Read* functions.
type Option func(*Options)

// DefaultOptions returns Euclidean weights, DefaultColumns, a no-op logger
// and post-load validation.
func DefaultOptions() Options {
	return Options{
		WeightFunc: weight.Euclidean,
		Columns:    DefaultColumns,
		Logger:     zap.NewNop(),
		Validate:   true,
	}
}

// WithWeightFunc sets the strategy used for edges without an explicit weight.
// A nil fn keeps the default.
func WithWeightFunc(fn weight.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// WithColumns replaces DefaultColumns.
func WithColumns(c ColumnMap) Option {
	return func(o *Options) { o.Columns = c }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithValidate toggles the core.Graph.Validate call after loading.
func WithValidate(on bool) Option {
	return func(o *Options) { o.Validate = on }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
