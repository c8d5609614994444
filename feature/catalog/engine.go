package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"shelfd/feature/catalog/models"
	"shelfd/feature/catalog/remote"
)

// Policy configures which validations are mandatory and how server
// responses are reconciled into local state.
type Policy struct {
	// RequireYear makes the publication year a mandatory field.
	RequireYear bool `mapstructure:"require_year" default:"false"`
	// RequireGenre makes the genre a mandatory field.
	RequireGenre bool `mapstructure:"require_genre" default:"false"`
	// MergeServerFields controls whether a successful update merges the
	// fields the server echoes back into the local record. When false the
	// locally entered values stand as-is.
	MergeServerFields bool `mapstructure:"merge_server_fields" default:"true"`
	// SnapshotSlot names the persistent snapshot slot for the catalog.
	SnapshotSlot string `mapstructure:"snapshot_slot" default:"catalog"`
}

// Engine orchestrates optimistic catalog mutations: apply locally, call the
// remote resource, then commit the authoritative response or roll back to
// the captured snapshot. Operations are safe to run from any goroutine;
// racing operations on the same identity resolve last-write-wins.
type Engine struct {
	store  *Store
	remote remote.API
	notify Notifier
	policy Policy
	log    *zap.Logger

	seq atomic.Int64
}

// NewEngine wires the engine to its collaborators.
func NewEngine(store *Store, client remote.API, notify Notifier, policy Policy, log *zap.Logger) *Engine {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Engine{
		store:  store,
		remote: client,
		notify: notify,
		policy: policy,
		log:    log,
	}
}

// Store exposes the engine's record store for read access.
func (e *Engine) Store() *Store {
	return e.store
}

// nextPlaceholder returns a fresh client-side identity. Placeholders are
// negative, so they can never collide with a server-assigned identity.
func (e *Engine) nextPlaceholder() int {
	return -int(e.seq.Add(1))
}

// render notifies the presentation surface and persists the snapshot.
// Snapshot failures are logged, never fatal: the in-memory state is already
// correct and the next render retries the write.
func (e *Engine) render(ctx context.Context) {
	e.notify.RenderNeeded(e.store.All())
	if err := e.store.Snapshot(ctx); err != nil {
		e.log.Warn("failed to persist catalog snapshot", zap.Error(err))
	}
}

// Create validates the payload, inserts the record optimistically under a
// placeholder identity, and swaps in the server-assigned identity once the
// remote create succeeds. On failure the record is removed again.
func (e *Engine) Create(ctx context.Context, p models.Payload) (models.Book, error) {
	p.Genre = CanonicalGenre(p.Genre)
	if err := ValidatePayload(p, e.policy); err != nil {
		return models.Book{}, err
	}

	t := beginTx("create")
	placeholder := e.nextPlaceholder()
	book := models.Book{
		ID:          placeholder,
		Title:       strings.TrimSpace(p.Title),
		Author:      strings.TrimSpace(p.Author),
		Description: strings.TrimSpace(p.Description),
		Genre:       p.Genre,
		Year:        strings.TrimSpace(p.Year),
	}

	e.store.InsertFront(book)
	e.render(ctx)

	raw, err := e.remote.Create(ctx, p)
	if err != nil {
		// Remove by placeholder identity; a racing delete may have taken
		// the record already, which leaves nothing to undo.
		if _, rmErr := e.store.Remove(placeholder); rmErr != nil {
			e.log.Debug("rollback target already gone", t.fields()...)
		}
		t.rollback()
		e.render(ctx)
		e.notify.OperationError(fmt.Sprintf("create failed: %v", err))
		e.log.Warn("create rolled back", append(t.fields(), zap.Error(err))...)
		return models.Book{}, err
	}

	committed := book
	if server, ok := Normalize(raw); ok && server.ID != 0 {
		committed = patchFromRaw(raw).Apply(book)
		committed.ID = server.ID
	} else {
		e.log.Warn("create response carried no identity, keeping placeholder", t.fields()...)
	}

	// The record may have been deleted while the call was in flight; the
	// commit is then a no-op.
	if e.store.Replace(placeholder, committed) {
		e.render(ctx)
	}
	t.commit()
	e.log.Debug("create committed", append(t.fields(), zap.Int("id", committed.ID))...)
	e.notify.OperationSuccess(fmt.Sprintf("created %q", committed.Title))
	return committed, nil
}

// Update validates the patch, applies it optimistically, and reconciles the
// server response according to the merge policy. On failure the captured
// prior snapshot is restored verbatim.
func (e *Engine) Update(ctx context.Context, id int, p models.Patch) (models.Book, error) {
	if p.Genre != nil {
		g := CanonicalGenre(*p.Genre)
		p.Genre = &g
	}
	if err := ValidatePatch(p, e.policy); err != nil {
		return models.Book{}, err
	}

	t := beginTx("update")
	prior, err := e.store.ReplaceFields(id, p)
	if err != nil {
		return models.Book{}, err
	}
	e.render(ctx)

	raw, err := e.remote.Update(ctx, id, p.Fields())
	if err != nil {
		// Restore the prior snapshot verbatim. A racing delete owns the
		// record if it is gone; nothing to restore then.
		if !e.store.Replace(id, prior) {
			e.log.Debug("rollback target already gone", t.fields()...)
		}
		t.rollback()
		e.render(ctx)
		e.notify.OperationError(fmt.Sprintf("update failed: %v", err))
		e.log.Warn("update rolled back", append(t.fields(), zap.Error(err))...)
		return models.Book{}, err
	}

	if e.policy.MergeServerFields && raw != nil {
		// Server is authoritative for every field it echoes back.
		if _, err := e.store.ReplaceFields(id, patchFromRaw(raw)); err != nil {
			e.log.Debug("commit target already gone", t.fields()...)
		}
	}
	t.commit()
	e.render(ctx)

	updated, _ := e.store.Find(id)
	e.log.Debug("update committed", append(t.fields(), zap.Int("id", id))...)
	e.notify.OperationSuccess(fmt.Sprintf("updated %q", updated.Title))
	return updated, nil
}

// Delete removes the record optimistically and reinserts it if the remote
// delete fails.
func (e *Engine) Delete(ctx context.Context, id int) error {
	t := beginTx("delete")
	removed, err := e.store.Remove(id)
	if err != nil {
		return err
	}
	e.render(ctx)

	if err := e.remote.Delete(ctx, id); err != nil {
		e.store.InsertFront(removed)
		t.rollback()
		e.render(ctx)
		e.notify.OperationError(fmt.Sprintf("delete failed: %v", err))
		e.log.Warn("delete rolled back", append(t.fields(), zap.Error(err))...)
		return err
	}

	t.commit()
	e.log.Debug("delete committed", append(t.fields(), zap.Int("id", id))...)
	e.notify.OperationSuccess(fmt.Sprintf("deleted %q", removed.Title))
	return nil
}

// Pull fetches the initial record set from the remote resource, normalizes
// it and replaces the store contents. Used at startup and by the pull
// command; it is not an optimistic operation and mutates nothing on error.
func (e *Engine) Pull(ctx context.Context, limit int) (int, error) {
	raws, err := e.remote.List(ctx, limit)
	if err != nil {
		e.notify.OperationError(fmt.Sprintf("pull failed: %v", err))
		return 0, err
	}
	books := NormalizeList(raws)
	e.store.Hydrate(books)
	e.render(ctx)
	return len(books), nil
}
