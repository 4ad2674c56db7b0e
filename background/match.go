package background

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/campusconnect/helpmatch-api/matching"
)

// GenerateMatches is the task behind `generate_matches`. It recomputes a
// request's shortlist and reconciles it against stored matches; the same
// orchestration backs the synchronous generate API, so pre-computing here
// and a later explicit call are interchangeable.
func (m *BackgroundManager) GenerateMatches(requestID string, topN int64) error {
	matches, err := matching.Generate(m.store, requestID, matching.ClampTopN(int(topN)), time.Now().UTC())
	if err != nil {
		log.WithError(err).WithField("request_id", requestID).Error("generate matches")
		return err
	}

	log.WithFields(log.Fields{
		"request_id": requestID,
		"matches":    len(matches),
	}).Info("generated matches")
	return nil
}
