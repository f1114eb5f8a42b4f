package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kamaukev/quiz_genie/database"
	"github.com/kamaukev/quiz_genie/models"
	"github.com/kamaukev/quiz_genie/utils"
	"golang.org/x/sync/errgroup"
)

// TrendPoint is one day's worth of activity, keyed by UTC calendar date.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

func requestedRange(c *fiber.Ctx) utils.DateRange {
	return utils.ResolveDateRange(c.Query("period"), c.Query("startDate"), c.Query("endDate"))
}

func countLogins(r utils.DateRange) (int64, error) {
	var n int64
	err := database.DB.Model(&models.LoginEvent{}).
		Where("login_time BETWEEN ? AND ?", r.Start, r.End).Count(&n).Error
	return n, err
}

func countQuizAttempts(r utils.DateRange) (int64, error) {
	var n int64
	err := database.DB.Model(&models.QuizAttempt{}).
		Where("created_at BETWEEN ? AND ?", r.Start, r.End).Count(&n).Error
	return n, err
}

func loginTrend(r utils.DateRange) ([]TrendPoint, error) {
	points := []TrendPoint{}
	err := database.DB.Model(&models.LoginEvent{}).
		Select("to_char(login_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, count(*) AS count").
		Where("login_time BETWEEN ? AND ?", r.Start, r.End).
		Group("date").Order("date asc").
		Scan(&points).Error
	return points, err
}

func quizTrend(r utils.DateRange) ([]TrendPoint, error) {
	points := []TrendPoint{}
	err := database.DB.Model(&models.QuizAttempt{}).
		Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date, count(*) AS count").
		Where("created_at BETWEEN ? AND ?", r.Start, r.End).
		Group("date").Order("date asc").
		Scan(&points).Error
	return points, err
}

type UserStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	DailyRegistrations int64 `json:"dailyRegistrations"`
}

func userStats() (UserStats, error) {
	var stats UserStats
	if err := database.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, err
	}

	today := utils.ResolveDateRange("today", "", "")
	err := database.DB.Model(&models.User{}).
		Where("created_at BETWEEN ? AND ?", today.Start, today.End).
		Count(&stats.DailyRegistrations).Error
	return stats, err
}

func GetLoginStats(c *fiber.Ctx) error {
	n, err := countLogins(requestedRange(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"logins": n})
}

func GetQuizStats(c *fiber.Ctx) error {
	n, err := countQuizAttempts(requestedRange(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"quizzes": n})
}

func GetLoginTrend(c *fiber.Ctx) error {
	points, err := loginTrend(requestedRange(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(points)
}

func GetQuizTrend(c *fiber.Ctx) error {
	points, err := quizTrend(requestedRange(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(points)
}

func GetUserStats(c *fiber.Ctx) error {
	stats, err := userStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(stats)
}

type DashboardResponse struct {
	Logins     int64        `json:"logins"`
	Quizzes    int64        `json:"quizzes"`
	LoginTrend []TrendPoint `json:"loginTrend"`
	QuizTrend  []TrendPoint `json:"quizTrend"`
	Users      UserStats    `json:"users"`
	Start      time.Time    `json:"start"`
	End        time.Time    `json:"end"`
}

// GetDashboard runs the five aggregates in one call. They are independent
// read-only queries, so they run concurrently.
func GetDashboard(c *fiber.Ctx) error {
	r := requestedRange(c)
	resp := DashboardResponse{Start: r.Start, End: r.End}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		resp.Logins, err = countLogins(r)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Quizzes, err = countQuizAttempts(r)
		return err
	})
	g.Go(func() error {
		var err error
		resp.LoginTrend, err = loginTrend(r)
		return err
	})
	g.Go(func() error {
		var err error
		resp.QuizTrend, err = quizTrend(r)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Users, err = userStats()
		return err
	})

	if err := g.Wait(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(resp)
}
