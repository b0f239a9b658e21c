package compare

import (
	"context"
	"fmt"
	"os"
	"path"

	"bom-matcher/core/storage"
	"bom-matcher/core/tokenizer"

	"golang.org/x/sync/errgroup"
)

// Input is one document handed to a run.
type Input struct {
	// Name identifies the document in errors and diagnostics.
	Name string
	// Kind is the declared format.
	Kind tokenizer.Kind
	// Data is the raw content.
	Data []byte
}

// Ref points at a document to open, on disk or in object storage.
type Ref struct {
	// Location is a file path or an s3://bucket/key reference.
	Location string
	// Kind overrides the kind inferred from the name when set.
	Kind tokenizer.Kind
}

// Opener reads documents from disk or from object storage.
type Opener struct {
	// Client is the storage client. Nil disables storage references.
	Client storage.Client
	// Bucket resolves bare keys when FromStorage is set.
	Bucket string
	// FromStorage treats every location as an object key.
	FromStorage bool
}

// Open reads a single document.
func (o *Opener) Open(ctx context.Context, ref Ref) (Input, error) {
	kind := ref.Kind
	if kind == "" {
		kind = tokenizer.KindFromName(ref.Location)
	}

	if o.FromStorage || storage.IsURI(ref.Location) {
		if o.Client == nil {
			return Input{}, fmt.Errorf("%s: storage is not configured", ref.Location)
		}
		bucket, key, err := storage.ParseURI(ref.Location, o.Bucket)
		if err != nil {
			return Input{}, err
		}
		if ref.Kind == "" {
			kind = tokenizer.KindFromName(key)
		}
		data, err := storage.ReadObject(ctx, o.Client, bucket, key)
		if err != nil {
			return Input{}, err
		}
		return Input{Name: path.Base(key), Kind: kind, Data: data}, nil
	}

	data, err := os.ReadFile(ref.Location)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read %s: %w", ref.Location, err)
	}
	return Input{Name: ref.Location, Kind: kind, Data: data}, nil
}

// OpenAll reads every document concurrently. Inputs are returned in the order
// of refs; the first failure cancels the remaining reads.
func (o *Opener) OpenAll(ctx context.Context, refs ...Ref) ([]Input, error) {
	inputs := make([]Input, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			in, err := o.Open(ctx, ref)
			if err != nil {
				return err
			}
			inputs[i] = in
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}
