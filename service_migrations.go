package roleauth

import (
	"github.com/fernandezvara/dbkit"
)

// Migrations returns all database migrations required by roleauth.
// Use db.Migrate(ctx, roleauth.Migrations()) to run them.
func Migrations() []dbkit.Migration {
	return []dbkit.Migration{
		{
			ID:          "roleauth-001",
			Description: "Create fastzdp_roles table",
			SQL: `
                CREATE TABLE IF NOT EXISTS fastzdp_roles (
                    id BIGSERIAL PRIMARY KEY,
                    name TEXT NOT NULL,
                    nickname TEXT NOT NULL DEFAULT '',
                    CONSTRAINT fastzdp_roles_name_key UNIQUE (name)
                )`,
		},
		{
			ID:          "roleauth-002",
			Description: "Create fastzdp_auths table",
			SQL: `
                CREATE TABLE IF NOT EXISTS fastzdp_auths (
                    id BIGSERIAL PRIMARY KEY,
                    name TEXT NOT NULL,
                    nickname TEXT NOT NULL DEFAULT '',
                    CONSTRAINT fastzdp_auths_name_key UNIQUE (name)
                )`,
		},
		{
			ID:          "roleauth-003",
			Description: "Create fastzdp_role_users table",
			SQL: `
                CREATE TABLE IF NOT EXISTS fastzdp_role_users (
                    id BIGSERIAL PRIMARY KEY,
                    role_id BIGINT NOT NULL,
                    role_name TEXT NOT NULL,
                    user_id BIGINT NOT NULL,
                    user_name TEXT NOT NULL
                )`,
		},
		{
			ID:          "roleauth-004",
			Description: "Create fastzdp_role_auths table",
			SQL: `
                CREATE TABLE IF NOT EXISTS fastzdp_role_auths (
                    id BIGSERIAL PRIMARY KEY,
                    role_id BIGINT NOT NULL,
                    role_name TEXT NOT NULL,
                    auth_id BIGINT NOT NULL,
                    auth_name TEXT NOT NULL
                )`,
		},
		{
			ID:          "roleauth-005",
			Description: "Index link tables by role, user and permission",
			SQL: `
                CREATE INDEX IF NOT EXISTS fastzdp_role_users_role_id_idx ON fastzdp_role_users (role_id);
                CREATE INDEX IF NOT EXISTS fastzdp_role_users_user_id_idx ON fastzdp_role_users (user_id);
                CREATE INDEX IF NOT EXISTS fastzdp_role_auths_role_id_idx ON fastzdp_role_auths (role_id);
                CREATE INDEX IF NOT EXISTS fastzdp_role_auths_auth_id_idx ON fastzdp_role_auths (auth_id)`,
		},
	}
}
