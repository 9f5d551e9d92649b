package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/renatNoore/to-do-app/internal/todo"
)

// DefaultKey is the storage slot holding the item collection.
const DefaultKey = "todo-app:v1"

var (
	errNullRecord  = errors.New("null record")
	errBlankRecord = errors.New("record has blank id or text")
)

const itemSchemaURL = "ticklist://item.schema.json"

const itemSchema = `{
  "type": "object",
  "required": ["id", "text"],
  "properties": {
    "id":        {"type": "string", "minLength": 1},
    "text":      {"type": "string", "minLength": 1},
    "completed": {"type": "boolean"},
    "createdAt": {"type": "integer"}
  }
}`

// Adapter loads and saves the collection under a single key.
type Adapter struct {
	backend Backend
	key     string
	logger  *log.Logger
	schema  *jsonschema.Schema
}

// AdapterOption customizes an Adapter.
type AdapterOption func(*Adapter)

// WithKey overrides DefaultKey.
func WithKey(key string) AdapterOption {
	return func(a *Adapter) {
		if k := strings.TrimSpace(key); k != "" {
			a.key = k
		}
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(logger *log.Logger) AdapterOption {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAdapter wraps backend.
func NewAdapter(backend Backend, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		backend: backend,
		key:     DefaultKey,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	schema, err := compileItemSchema()
	if err != nil {
		// The schema is a constant; fall back to structural decoding only.
		a.logger.Warn("item schema unavailable", "err", err)
	}
	a.schema = schema
	return a
}

// Key returns the storage key in use.
func (a *Adapter) Key() string {
	return a.key
}

// Load reads the collection. It never fails: unreadable or malformed data
// yields an empty collection.
func (a *Adapter) Load(ctx context.Context) todo.Collection {
	raw, ok, err := a.backend.Get(ctx, a.key)
	if err != nil {
		a.logger.Warn("load failed; starting empty", "key", a.key, "err", err)
		return todo.Collection{}
	}
	if !ok || len(bytes.TrimSpace(raw)) == 0 {
		return todo.Collection{}
	}
	return a.decode(raw)
}

// Save writes the collection synchronously. Failures are logged and dropped.
func (a *Adapter) Save(ctx context.Context, c todo.Collection) {
	if c == nil {
		c = todo.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		a.logger.Warn("marshal collection failed", "err", err)
		return
	}
	if err := a.backend.Set(ctx, a.key, data); err != nil {
		a.logger.Warn("save failed; keeping in-memory state", "key", a.key, "err", err)
		return
	}
	a.logger.Debug("saved collection", "key", a.key, "items", len(c))
}

func (a *Adapter) decode(raw []byte) todo.Collection {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		a.logger.Warn("stored value is not a JSON array; starting empty", "key", a.key, "err", err)
		return todo.Collection{}
	}

	out := make(todo.Collection, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		item, err := a.decodeRecord(rec)
		if err != nil {
			a.logger.Debug("dropping stored record", "index", i, "err", err)
			continue
		}
		if _, dup := seen[item.ID]; dup {
			a.logger.Debug("dropping duplicate id", "id", item.ID)
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

func (a *Adapter) decodeRecord(rec json.RawMessage) (todo.Item, error) {
	var generic any
	if err := json.Unmarshal(rec, &generic); err != nil {
		return todo.Item{}, fmt.Errorf("decode record: %w", err)
	}
	if generic == nil {
		return todo.Item{}, errNullRecord
	}
	if a.schema != nil {
		if err := a.schema.Validate(generic); err != nil {
			return todo.Item{}, fmt.Errorf("validate record: %w", err)
		}
	}
	var item todo.Item
	if err := json.Unmarshal(rec, &item); err != nil {
		return todo.Item{}, fmt.Errorf("decode item: %w", err)
	}
	item.Text = strings.TrimSpace(item.Text)
	if item.ID == "" || item.Text == "" {
		return todo.Item{}, errBlankRecord
	}
	return item, nil
}

func compileItemSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(itemSchemaURL, strings.NewReader(itemSchema)); err != nil {
		return nil, fmt.Errorf("add item schema: %w", err)
	}
	schema, err := compiler.Compile(itemSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile item schema: %w", err)
	}
	return schema, nil
}
