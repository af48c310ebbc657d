package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"fabrica/internal/core/id"
	"fabrica/internal/domain"
)

// Compile-time check that AuditService implements domain.AuditRecorder.
var _ domain.AuditRecorder = (*AuditService)(nil)

// CompressionAlgo specifies the compression algorithm used for a
// stored snapshot.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// AuditEntry is one change-history row.
type AuditEntry struct {
	ID                 id.ID              `db:"id"`
	EntityType         string             `db:"entity_type"`
	EntityID           id.ID              `db:"entity_id"`
	Action             domain.AuditAction `db:"action"`
	ActorID            id.ID              `db:"actor_id"`
	Snapshot           json.RawMessage    `db:"snapshot"`
	SnapshotCompressed []byte             `db:"snapshot_compressed"`
	CompressionAlgo    CompressionAlgo    `db:"compression_algo"`
	CreatedAt          time.Time          `db:"created_at"`
}

// AuditService records entity change history. Snapshots above the
// threshold are zstd-compressed before storage.
type AuditService struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewAuditService creates a new audit service.
func NewAuditService(txManager *TxManager) (*AuditService, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &AuditService{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record implements domain.AuditRecorder.
func (s *AuditService) Record(ctx context.Context, entityType string, entityID id.ID, action domain.AuditAction, actor id.ID, snapshot any) error {
	var payload json.RawMessage
	if snapshot != nil {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		payload = data
	}

	entry := AuditEntry{
		ID:              id.New(),
		EntityType:      entityType,
		EntityID:        entityID,
		Action:          action,
		ActorID:         actor,
		Snapshot:        payload,
		CompressionAlgo: CompressionNone,
		CreatedAt:       time.Now().UTC(),
	}

	if len(entry.Snapshot) > s.compressThreshold {
		entry.SnapshotCompressed = s.encoder.EncodeAll(entry.Snapshot, nil)
		entry.Snapshot = nil
		entry.CompressionAlgo = CompressionZstd
	}

	sql := `
		INSERT INTO sys_audit (
			id, entity_type, entity_id, action, actor_id,
			snapshot, snapshot_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.txManager.GetQuerier(ctx).Exec(ctx, sql,
		entry.ID, entry.EntityType, entry.EntityID, entry.Action, entry.ActorID,
		entry.Snapshot, entry.SnapshotCompressed, entry.CompressionAlgo,
		entry.CreatedAt,
	)
	return err
}

// GetEntityHistory retrieves audit history for an entity, newest first.
func (s *AuditService) GetEntityHistory(ctx context.Context, entityType string, entityID id.ID, limit int) ([]AuditEntry, error) {
	sql := `
		SELECT id, entity_type, entity_id, action, actor_id,
			   snapshot, snapshot_compressed, compression_algo, created_at
		FROM sys_audit
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := s.txManager.GetQuerier(ctx).Query(ctx, sql, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.ActorID,
			&e.Snapshot, &e.SnapshotCompressed, &e.CompressionAlgo,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if e.CompressionAlgo == CompressionZstd && len(e.SnapshotCompressed) > 0 {
			decompressed, err := s.decoder.DecodeAll(e.SnapshotCompressed, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress snapshot: %w", err)
			}
			e.Snapshot = decompressed
			e.SnapshotCompressed = nil
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
