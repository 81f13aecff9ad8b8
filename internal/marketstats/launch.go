package marketstats

import (
	"marketpulse/pkg/contracts/domain"
)

// launchAges are the fixed time-since-launch buckets, in days.
var launchAges = []struct {
	label   string
	maxDays int // exclusive upper bound, 0 means unbounded
}{
	{label: "<30d", maxDays: 30},
	{label: "30-90d", maxDays: 90},
	{label: "90-365d", maxDays: 365},
	{label: ">365d", maxDays: 0},
}

// computeLaunchProfile buckets products by time since launch and
// reports mean rating and units sold per bucket, plus the mean and
// median age of the dated catalog. When no record in the batch carries
// a launch date the profile is omitted entirely.
func (e *Engine) computeLaunchProfile(records []domain.SalesRecord) *LaunchProfile {
	now := e.now()

	type acc struct {
		count   int
		ratings []float64
		units   []float64
	}
	accs := make([]acc, len(launchAges))
	var allDays []float64

	for _, rec := range records {
		if rec.LaunchDate == nil {
			continue
		}
		days := int(now.Sub(*rec.LaunchDate).Hours() / 24)
		if days < 0 {
			days = 0
		}
		allDays = append(allDays, float64(days))

		idx := len(launchAges) - 1
		for i, age := range launchAges {
			if age.maxDays > 0 && days < age.maxDays {
				idx = i
				break
			}
		}
		accs[idx].count++
		accs[idx].ratings = append(accs[idx].ratings, rec.Rating)
		accs[idx].units = append(accs[idx].units, float64(rec.UnitsSold))
	}

	if len(allDays) == 0 {
		return nil
	}

	profile := &LaunchProfile{
		AvgDaysSinceLaunch:    mean(allDays),
		MedianDaysSinceLaunch: median(allDays),
	}
	for i, age := range launchAges {
		if accs[i].count == 0 {
			continue
		}
		profile.Buckets = append(profile.Buckets, LaunchBucket{
			Age:          age.label,
			ProductCount: accs[i].count,
			AvgRating:    mean(accs[i].ratings),
			AvgUnitsSold: mean(accs[i].units),
		})
	}
	return profile
}
