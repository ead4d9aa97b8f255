package stats

import (
	"sort"
	"strconv"
	"time"

	"student-wellness-system/internal/global/database"
	"student-wellness-system/internal/global/response"
	"student-wellness-system/internal/model"

	"github.com/gin-gonic/gin"
)

const defaultTopN = 5

// TopActivities returns, per faculty or per gender, the most enrolled
// activities among non-staff users.
func TopActivities(c *gin.Context) {
	by := c.Query("by")
	if by != GroupByFaculty && by != GroupByGender {
		response.Fail(c, response.ErrInvalidRequest.WithTips("by debe ser faculty o gender"))
		return
	}

	limit := defaultTopN
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}

	var f Filters
	f.ActivityType = c.Query("activity_type")
	f.PeriodFilter = c.Query("period_filter")
	since, _, active := PeriodRange(f.PeriodFilter, time.Now())

	enrollments, err := selectEnrollments(f, since, active)
	if err != nil {
		log.Error("Error al consultar inscripciones para top-N", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// bucket → activity → count
	buckets := map[string]map[string]int{}
	for _, e := range enrollments {
		key := groupKey(by, "", e.FacultyName, e.Gender)
		if buckets[key] == nil {
			buckets[key] = map[string]int{}
		}
		buckets[key][e.ActivityName]++
	}

	type topEntry struct {
		ActivityName string `json:"activity_name"`
		Enrolled     int    `json:"enrolled"`
	}
	result := map[string][]topEntry{}
	for bucket, activities := range buckets {
		entries := make([]topEntry, 0, len(activities))
		for name, count := range activities {
			entries = append(entries, topEntry{ActivityName: name, Enrolled: count})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Enrolled != entries[j].Enrolled {
				return entries[i].Enrolled > entries[j].Enrolled
			}
			return entries[i].ActivityName < entries[j].ActivityName
		})
		if len(entries) > limit {
			entries = entries[:limit]
		}
		result[bucket] = entries
	}

	response.Success(c, result)
}

// ActivityDistribution returns the gender and faculty distribution of the
// non-staff users enrolled in one activity.
func ActivityDistribution(c *gin.Context) {
	activityID := c.Param("id")
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		response.Fail(c, response.ErrNotFound.WithTips("actividad no encontrada"))
		return
	}

	enrollments, err := selectEnrollments(Filters{}, time.Time{}, false)
	if err != nil {
		log.Error("Error al consultar inscripciones para distribución", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	byGender := map[string]int{}
	byFaculty := map[string]int{}
	total := 0
	for _, e := range enrollments {
		if e.ActivityID != activity.ID {
			continue
		}
		total++
		byGender[groupKey(GroupByGender, "", "", e.Gender)]++
		byFaculty[groupKey(GroupByFaculty, "", e.FacultyName, "")]++
	}

	response.Success(c, gin.H{
		"activity_name": activity.Name,
		"total":         total,
		"by_gender":     byGender,
		"by_faculty":    byFaculty,
	})
}
