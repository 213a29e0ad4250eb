// SPDX-License-Identifier: Apache-2.0

package store

const (
	upsertRecord = `
		INSERT INTO records (
			collection,
			id,
			parent_id,
			owner_id,
			sync_status,
			created_at,
			updated_at,
			payload
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			parent_id = excluded.parent_id,
			owner_id = excluded.owner_id,
			sync_status = excluded.sync_status,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			payload = excluded.payload;`

	deleteRecord = `
		DELETE FROM records
		WHERE collection = ? AND id = ?;`

	enqueueDeletion = `
		INSERT INTO deletion_log (collection, record_id, action, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, record_id) DO NOTHING;`

	selectDeletionLog = `
		SELECT collection, record_id, action, created_at
		FROM deletion_log
		ORDER BY created_at, record_id;`

	upsertMeta = `
		INSERT INTO sync_meta (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	selectMeta = `
		SELECT value FROM sync_meta WHERE key = ?;`

	wipeRecords    = `DELETE FROM records;`
	wipeDeletions  = `DELETE FROM deletion_log;`
	wipeMeta       = `DELETE FROM sync_meta;`
)
