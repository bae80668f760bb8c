package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"recruitpro/internal/domain/entity"
	"recruitpro/internal/query"
	"recruitpro/internal/repository"
)

// Demo content sizes.
const (
	DemoJobCount  = 25
	DemoPostCount = 15
)

// SeedStore is what SeedDemo needs from a content repository.
type SeedStore interface {
	repository.ContentRepository
	repository.ContentWriter
}

var (
	demoRoles = []string{
		"Backend Engineer", "Frontend Developer", "Product Designer", "Data Analyst",
		"Site Reliability Engineer", "Recruitment Consultant", "QA Engineer",
	}
	demoCities = []struct{ slug, name string }{
		{"berlin", "Berlin"}, {"london", "London"}, {"amsterdam", "Amsterdam"},
		{"lisbon", "Lisbon"}, {"warsaw", "Warsaw"},
	}
	demoJobTypes = []struct{ slug, name string }{
		{"full-time", "Full-time"}, {"part-time", "Part-time"}, {"contract", "Contract"},
	}
	demoCategories = []struct{ slug, name string }{
		{"hiring-tips", "Hiring Tips"}, {"career-advice", "Career Advice"}, {"company-news", "Company News"},
	}
)

// DemoJobs returns DemoJobCount published job listings. The newest is
// published one hour before now, each following one an hour earlier.
func DemoJobs(now time.Time) []*entity.Content {
	jobs := make([]*entity.Content, 0, DemoJobCount)
	for i := range DemoJobCount {
		role := demoRoles[i%len(demoRoles)]
		city := demoCities[i%len(demoCities)]
		kind := demoJobTypes[i%len(demoJobTypes)]
		published := now.Add(-time.Duration(i+1) * time.Hour).UTC().Truncate(time.Second)
		salary := 40000 + (i%6)*5000

		jobs = append(jobs, &entity.Content{
			Type:           entity.TypeJob,
			Title:          fmt.Sprintf("%s #%d", role, i+1),
			Slug:           fmt.Sprintf("%s-%d", slugify(role), i+1),
			Excerpt:        fmt.Sprintf("Join our %s team as a %s.", city.name, strings.ToLower(role)),
			Status:         entity.StatusPublish,
			AuthorName:     "RecruitPro",
			PublishedAt:    published,
			ModifiedAt:     published,
			Company:        fmt.Sprintf("Acme %s", city.name),
			Location:       city.name,
			EmploymentType: kind.name,
			SalaryMin:      salary,
			SalaryMax:      salary + 20000,
			Featured:       i%8 == 0,
			Remote:         i%3 == 0,
			Terms: []entity.Term{
				{Taxonomy: "job_category", Slug: slugify(role), Name: role},
				{Taxonomy: "job_location", Slug: city.slug, Name: city.name},
				{Taxonomy: "job_type", Slug: kind.slug, Name: kind.name},
			},
		})
	}
	return jobs
}

// DemoPosts returns DemoPostCount published blog posts, newest first.
func DemoPosts(now time.Time) []*entity.Content {
	posts := make([]*entity.Content, 0, DemoPostCount)
	for i := range DemoPostCount {
		cat := demoCategories[i%len(demoCategories)]
		published := now.Add(-time.Duration(i+1) * 24 * time.Hour).UTC().Truncate(time.Second)

		posts = append(posts, &entity.Content{
			Type:        entity.TypePost,
			Title:       fmt.Sprintf("%s, part %d", cat.name, i+1),
			Slug:        fmt.Sprintf("%s-part-%d", cat.slug, i+1),
			Excerpt:     fmt.Sprintf("Notes from the RecruitPro team on %s.", strings.ToLower(cat.name)),
			Status:      entity.StatusPublish,
			AuthorName:  "Editorial Team",
			PublishedAt: published,
			ModifiedAt:  published,
			Terms: []entity.Term{
				{Taxonomy: "category", Slug: cat.slug, Name: cat.name},
			},
		})
	}
	return posts
}

// SeedDemo inserts the demo jobs and posts unless published jobs already
// exist. It returns the number of items created.
func SeedDemo(ctx context.Context, store SeedStore, now time.Time) (int, error) {
	existing, err := store.Count(ctx, query.New(query.TypeJob))
	if err != nil {
		return 0, fmt.Errorf("seed demo: %w", err)
	}
	if existing > 0 {
		slog.Info("demo seed skipped, content already present", slog.Int64("jobs", existing))
		return 0, nil
	}

	items := append(DemoJobs(now), DemoPosts(now)...)
	for _, item := range items {
		if err := store.Create(ctx, item); err != nil {
			return 0, fmt.Errorf("seed demo %s: %w", item.Slug, err)
		}
	}

	slog.Info("demo content seeded",
		slog.Int("jobs", DemoJobCount),
		slog.Int("posts", DemoPostCount))
	return len(items), nil
}

func slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
