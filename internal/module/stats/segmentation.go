package stats

import (
	"sort"
	"time"

	"student-wellness-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Segmentation dimensions.
const (
	GroupByActivity = "activity"
	GroupByFaculty  = "faculty"
	GroupByGender   = "gender"
)

// GroupRow is one segmentation bucket: a dimension key with its enrollment
// and participation counts. Period carries the range label when a period
// filter is active.
type GroupRow struct {
	Key               string  `json:"key"`
	EnrolledCount     int     `json:"enrolled_count"`
	ParticipantCount  int     `json:"participant_count"`
	ParticipationRate float64 `json:"participation_rate"`
	Period            string  `json:"period,omitempty"`
}

// BuildSegmentation runs the shared query pipeline; the JSON view and both
// exports consume the exact same row set for identical filters.
func BuildSegmentation(f Filters, now time.Time) ([]GroupRow, error) {
	since, label, active := PeriodRange(f.PeriodFilter, now)

	enrollments, err := selectEnrollments(f, since, active)
	if err != nil {
		return nil, err
	}
	participations, err := selectParticipations(f, since, active)
	if err != nil {
		return nil, err
	}

	groupBy := f.GroupBy
	if groupBy != GroupByFaculty && groupBy != GroupByGender {
		groupBy = GroupByActivity
	}

	enrolledBy := map[string]int{}
	for _, e := range enrollments {
		enrolledBy[groupKey(groupBy, e.ActivityName, e.FacultyName, e.Gender)]++
	}

	// distinct participants per bucket
	participantsBy := map[string]map[uint]bool{}
	for _, p := range participations {
		key := groupKey(groupBy, p.ActivityName, p.FacultyName, p.Gender)
		if participantsBy[key] == nil {
			participantsBy[key] = map[uint]bool{}
		}
		participantsBy[key][p.UserID] = true
	}

	keys := make(map[string]bool, len(enrolledBy))
	for k := range enrolledBy {
		keys[k] = true
	}
	for k := range participantsBy {
		keys[k] = true
	}

	rows := make([]GroupRow, 0, len(keys))
	for key := range keys {
		enrolled := enrolledBy[key]
		participants := len(participantsBy[key])
		rate := 0.0
		if enrolled > 0 {
			rate = float64(participants) / float64(enrolled)
		}
		rows = append(rows, GroupRow{
			Key:               key,
			EnrolledCount:     enrolled,
			ParticipantCount:  participants,
			ParticipationRate: rate,
			Period:            label,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EnrolledCount != rows[j].EnrolledCount {
			return rows[i].EnrolledCount > rows[j].EnrolledCount
		}
		return rows[i].Key < rows[j].Key
	})

	return rows, nil
}

func groupKey(groupBy, activityName, facultyName, gender string) string {
	switch groupBy {
	case GroupByFaculty:
		if facultyName == "" {
			return "Sin facultad"
		}
		return facultyName
	case GroupByGender:
		if gender == "" {
			return "Sin especificar"
		}
		return gender
	default:
		return activityName
	}
}

// Segmentation is the staff report view.
func Segmentation(c *gin.Context) {
	var f Filters
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	rows, err := BuildSegmentation(f, time.Now())
	if err != nil {
		log.Error("Error al construir la segmentación", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"groups":   rows,
		"group_by": f.GroupBy,
		"total":    len(rows),
	})
}
