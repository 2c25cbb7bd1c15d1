package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables read by the submission repository.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS billing_project (
    project_id BIGINT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    client_name VARCHAR(255) NOT NULL DEFAULT '',
    active BOOLEAN NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS contest (
    contest_id BIGINT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    contest_type_id BIGINT NOT NULL,
    status VARCHAR(50) NOT NULL,
    milestone_feedback TEXT NULL,
    billing_project_id BIGINT NULL REFERENCES billing_project(project_id)
);

CREATE TABLE IF NOT EXISTS resource (
    resource_id BIGINT PRIMARY KEY,
    contest_id BIGINT NOT NULL REFERENCES contest(contest_id) ON DELETE CASCADE,
    user_id BIGINT NOT NULL,
    handle VARCHAR(100) NOT NULL,
    role VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS submission (
    submission_id BIGINT PRIMARY KEY,
    contest_id BIGINT NOT NULL REFERENCES contest(contest_id) ON DELETE CASCADE,
    resource_id BIGINT NOT NULL REFERENCES resource(resource_id),
    type VARCHAR(20) NOT NULL CHECK (type IN ('contest', 'milestone')),
    status VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'failed_screening', 'deleted')),
    placement INT NOT NULL DEFAULT 0,
    user_rank INT NOT NULL DEFAULT 0,
    extra BOOLEAN NOT NULL DEFAULT false,
    file_name VARCHAR(255) NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    modified_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_submission_contest ON submission(contest_id);

CREATE TABLE IF NOT EXISTS submission_feedback (
    submission_id BIGINT PRIMARY KEY REFERENCES submission(submission_id) ON DELETE CASCADE,
    feedback_text TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS prize (
    prize_id BIGINT PRIMARY KEY,
    contest_id BIGINT NOT NULL REFERENCES contest(contest_id) ON DELETE CASCADE,
    place INT NOT NULL,
    amount NUMERIC(12, 2) NOT NULL CHECK (amount >= 0),
    type VARCHAR(20) NOT NULL CHECK (type IN ('contest', 'milestone', 'additional')),
    number_of_submissions INT NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_prize_contest ON prize(contest_id);
`
