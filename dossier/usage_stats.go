package dossier

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// UsageStats tracks how a provider was doing. Dossier collapses
// provider failures into empty observations so this is the only place
// where they are still visible.
type UsageStats struct {
	Name string

	mutex        sync.Mutex
	lastUsed     time.Time
	lastError    string
	successCount uint64
	failureCount uint64
	failureKinds map[FailureKind]uint64
}

func (u *UsageStats) Used(err error) {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUsed = now

	if err == nil {
		u.successCount++

		return
	}

	if u.failureKinds == nil {
		u.failureKinds = map[FailureKind]uint64{}
	}

	u.failureCount++
	u.failureKinds[FailureKindOf(err)]++
	u.lastError = err.Error()
}

func (u *UsageStats) SuccessCount() uint64 {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	return u.successCount
}

func (u *UsageStats) FailureCount(kind FailureKind) uint64 {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	return u.failureKinds[kind]
}

func (u *UsageStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	u.mutex.Lock()

	if !u.lastUsed.IsZero() {
		lastUsedTime = u.lastUsed.Unix()
	}

	failures := make(map[string]uint64, len(u.failureKinds))

	for k, v := range u.failureKinds {
		failures[k.String()] = v
	}

	rawStruct := struct {
		Name         string            `json:"name"`
		LastUsed     int64             `json:"last_used"`
		LastError    string            `json:"last_error,omitempty"`
		SuccessCount uint64            `json:"success_count"`
		FailureCount uint64            `json:"failure_count"`
		Failures     map[string]uint64 `json:"failures,omitempty"`
	}{
		Name:         u.Name,
		LastUsed:     lastUsedTime,
		LastError:    u.lastError,
		SuccessCount: u.successCount,
		FailureCount: u.failureCount,
		Failures:     failures,
	}

	u.mutex.Unlock()

	return jsoniter.Marshal(&rawStruct)
}
