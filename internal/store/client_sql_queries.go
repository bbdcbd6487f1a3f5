package store

const (
	upsertShare = `INSERT INTO shares (
			user_id,
			share_id,
			vault_id,
			key_rotation,
			owner,
			shared,
			permission,
			target_members,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, share_id) DO UPDATE SET
			vault_id = excluded.vault_id,
			key_rotation = excluded.key_rotation,
			owner = excluded.owner,
			shared = excluded.shared,
			permission = excluded.permission,
			target_members = excluded.target_members,
			created_at = excluded.created_at;`

	getUserShares = `SELECT share_id, vault_id, key_rotation, owner, shared, permission, target_members, created_at
		FROM shares
		WHERE user_id = ?
		ORDER BY share_id;`

	getLastEventID = `SELECT event_id
		FROM share_event_ids
		WHERE user_id = ? AND share_id = ?;`

	upsertLastEventID = `INSERT INTO share_event_ids (user_id, share_id, event_id, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, share_id) DO UPDATE SET
			event_id = excluded.event_id,
			updated_at = excluded.updated_at;`

	getShareItems = `SELECT item_id, share_id, revision, content_format_version, key_rotation, content, item_key, state, created_at, modified_at
		FROM items
		WHERE share_id = ?
		ORDER BY item_id;`

	countShareItems = `SELECT COUNT(*) FROM items WHERE share_id = ?;`

	upsertShareKey = `INSERT INTO share_keys (share_id, key_rotation, key, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (share_id, key_rotation) DO UPDATE SET
			key = excluded.key,
			created_at = excluded.created_at;`
)

// itemsUpsertSuffix completes the multi-row INSERT built for items so that
// a newer revision replaces the stored row.
const itemsUpsertSuffix = `ON CONFLICT (share_id, item_id) DO UPDATE SET
			revision = excluded.revision,
			content_format_version = excluded.content_format_version,
			key_rotation = excluded.key_rotation,
			content = excluded.content,
			item_key = excluded.item_key,
			state = excluded.state,
			created_at = excluded.created_at,
			modified_at = excluded.modified_at`

// itemsBatchSize keeps a single INSERT under sqlite's bound-parameter limit.
const itemsBatchSize = 50
