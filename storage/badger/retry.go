// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	conflictAttempts   = 5
	conflictRetryDelay = 2 * time.Millisecond
)

// errInvalidAttempts is returned when retryOnConflict is asked for no attempts.
var errInvalidAttempts = errors.New("attempts must be positive")

// retryOnConflict runs operation until it succeeds, fails with anything other
// than a transaction conflict, or runs out of attempts. The delay doubles
// after each conflict. Returns the error from the last attempt.
func retryOnConflict(ctx context.Context, logger *slog.Logger, attempts int, baseDelay time.Duration, operation func() error) error {
	if attempts <= 0 {
		return errInvalidAttempts
	}

	delay := baseDelay
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if !errors.Is(lastErr, badger.ErrConflict) {
			return lastErr
		}
		logger.Debug("transaction conflict", "attempt", attempt, "attempts", attempts)

		if attempt == attempts {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return lastErr
}
