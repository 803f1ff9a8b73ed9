package seeder

import (
	"context"
	"fmt"

	"job-portal/internal/database"

	"github.com/google/uuid"
)

type demoJob struct {
	Company         string
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	ExperienceLevel float64
	Position        string
}

// Titles and descriptions reuse filter options so the filter card finds
// them.
var demoJobs = []demoJob{
	{
		Company:         "Hòa Bình Construction",
		Title:           "Kĩ Sư Xây Dựng",
		Description:     "Giám sát công trình Xây Dựng nhà ở và văn phòng.",
		Requirements:    []string{"AutoCAD", "Quản lý dự án"},
		Salary:          35000,
		Location:        "Hồ Chí Minh",
		JobType:         "Full-time",
		ExperienceLevel: 3,
		Position:        "2",
	},
	{
		Company:         "Hòa Bình Construction",
		Title:           "Công Nhân",
		Description:     "Thi công công trình Xây Dựng.",
		Requirements:    []string{"Sức khỏe tốt"},
		Salary:          12000,
		Location:        "Bình Dương",
		JobType:         "Full-time",
		ExperienceLevel: 0,
		Position:        "10",
	},
	{
		Company:         "FPT Software",
		Title:           "Lập Trình Viên",
		Description:     "Phát triển dịch vụ backend trong lĩnh vực Công Nghệ.",
		Requirements:    []string{"Go", "PostgreSQL", "Docker"},
		Salary:          40000,
		Location:        "Hà Nội",
		JobType:         "Full-time",
		ExperienceLevel: 2,
		Position:        "5",
	},
	{
		Company:         "FPT Software",
		Title:           "Kĩ Sư Phần Mềm",
		Description:     "Kĩ Thuật Phần Mềm cho hệ thống phân tán.",
		Requirements:    []string{"Go", "Kubernetes"},
		Salary:          60000,
		Location:        "Đà Nẵng",
		JobType:         "Full-time",
		ExperienceLevel: 4,
		Position:        "3",
	},
	{
		Company:         "Sài Gòn Hospitality",
		Title:           "Nhân Viên Bán Hàng",
		Description:     "Tư vấn khách hàng tại Nhà Hàng và Khách Sạn.",
		Requirements:    []string{"Giao tiếp"},
		Salary:          9000,
		Location:        "Đà Nẵng",
		JobType:         "Part-time",
		ExperienceLevel: 1,
		Position:        "4",
	},
}

type JobsSeeder struct {
	OwnerEmail string
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id",
		"title",
		"description",
		"requirements",
		"salary",
		"location",
		"job_type",
		"experience_level",
		"position",
		"company_id",
		"created_by",
	); err != nil {
		return err
	}

	ownerID, err := findUserID(ctx, db, s.OwnerEmail)
	if err != nil {
		return err
	}

	for _, it := range demoJobs {
		var companyID uuid.UUID
		if err := db.QueryRow(ctx, `SELECT id FROM companies WHERE name = $1`, it.Company).Scan(&companyID); err != nil {
			return fmt.Errorf("company %q: %w", it.Company, err)
		}

		var exists bool
		if err := db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM jobs WHERE title = $1 AND company_id = $2)`,
			it.Title, companyID,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err := db.Exec(
			ctx,
			`INSERT INTO jobs (id, title, description, requirements, salary, location, job_type, experience_level, position, company_id, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.New(),
			it.Title,
			it.Description,
			it.Requirements,
			it.Salary,
			it.Location,
			it.JobType,
			it.ExperienceLevel,
			it.Position,
			companyID,
			ownerID,
		)
		if err != nil {
			return fmt.Errorf("insert job %q: %w", it.Title, err)
		}
	}
	return nil
}
