// Package seed loads the showcase dataset the console ships with: two
// customers, the service catalog, their activity history and a demo owner
// account. Seeded ids are fixed strings so the records are addressable from
// the UI; runtime-created records get generated ids instead.
package seed

import (
	"time"

	"studio-console-backend/models"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// OwnerAccount is the demo owner credential the login endpoint checks
// against. The password is hashed at startup, never stored in clear.
type OwnerAccount struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
}

// DemoOwner builds the demo owner account with the given password.
func DemoOwner(password string) (OwnerAccount, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return OwnerAccount{}, err
	}
	return OwnerAccount{
		ID:           "owner-1",
		Name:         "店長",
		Email:        "owner@studio.example.com",
		Phone:        "0900-000-000",
		PasswordHash: hash,
	}, nil
}

// Load pushes the showcase dataset into the stores.
func Load(customers *stores.CustomerStore, services *stores.ServiceStore, activities *stores.ActivityStore) {
	customers.Seed(Customers())
	services.Seed(Services(), ServiceRecords())
	activities.Seed(Activities())
}

// Customers returns the two showcase customers. 王小美 keeps her body metrics
// private.
func Customers() []models.Customer {
	return []models.Customer{
		{
			ID:            "1",
			Name:          "王小美",
			Phone:         "0912-345-678",
			Email:         "wang@example.com",
			Address:       "台北市信義區信義路123號",
			Age:           28,
			Height:        165,
			Weight:        52,
			Occupation:    "上班族",
			HairType:      "細軟髮",
			HairColor:     "棕色",
			SkinCondition: "混合性肌膚",
			BusinessType:  models.BusinessBeauty,
			Notes:         "對染髮過敏",
			CreatedAt:     day(2024, 1, 15),
			LastVisit:     dayPtr(2024, 12, 10),
			TotalSpent:    15000,
			FieldVisibility: map[string]bool{
				"height": false,
				"weight": false,
			},
		},
		{
			ID:            "2",
			Name:          "李健身",
			Phone:         "0987-654-321",
			Email:         "li@example.com",
			Address:       "新北市板橋區文化路456號",
			Age:           35,
			Height:        175,
			Weight:        70,
			Occupation:    "工程師",
			HairType:      "正常髮質",
			HairColor:     "黑色",
			SkinCondition: "正常肌膚",
			BusinessType:  models.BusinessFitness,
			Notes:         "目標減重5公斤",
			CreatedAt:     day(2024, 2, 20),
			LastVisit:     dayPtr(2024, 12, 12),
			TotalSpent:    8000,
			FieldVisibility: map[string]bool{
				"age": false,
			},
		},
	}
}

// Services returns the showcase catalog.
func Services() []models.Service {
	return []models.Service{
		{
			ID:          "1",
			Name:        "深層清潔護膚",
			Description: "深層清潔毛孔，去除老廢角質",
			Price:       1500,
			Duration:    90,
			Category:    models.BusinessBeauty,
			IsActive:    true,
			CreatedAt:   day(2024, 1, 10),
		},
		{
			ID:          "2",
			Name:        "精油紓壓按摩",
			Description: "全身精油按摩，舒緩壓力",
			Price:       2000,
			Duration:    120,
			Category:    models.BusinessBeauty,
			IsActive:    true,
			CreatedAt:   day(2024, 1, 10),
		},
		{
			ID:          "3",
			Name:        "染髮造型",
			Description: "專業染髮配色，包含洗剪吹",
			Price:       3500,
			Duration:    180,
			Category:    models.BusinessHair,
			IsActive:    true,
			CreatedAt:   day(2024, 1, 10),
		},
		{
			ID:          "4",
			Name:        "個人健身指導",
			Description: "一對一健身指導，客製化訓練計畫",
			Price:       1200,
			Duration:    60,
			Category:    models.BusinessFitness,
			IsActive:    true,
			CreatedAt:   day(2024, 1, 10),
		},
	}
}

// ServiceRecords returns the showcase performed-service log.
func ServiceRecords() []models.ServiceRecord {
	return []models.ServiceRecord{
		{
			ID:         "1",
			CustomerID: "1",
			ServiceID:  "1",
			Date:       day(2024, 12, 10),
			Price:      1500,
			Notes:      "客戶滿意服務效果",
		},
		{
			ID:         "2",
			CustomerID: "2",
			ServiceID:  "4",
			Date:       day(2024, 12, 12),
			Price:      1200,
			Notes:      "完成第一次訓練",
		},
	}
}

// Activities returns the showcase activity history.
func Activities() []models.CustomerActivity {
	return []models.CustomerActivity{
		{
			ID:          "1",
			CustomerID:  "1",
			Type:        models.ActivityService,
			Title:       "深層清潔護膚",
			Description: "90分鐘深層清潔護膚療程",
			Amount:      1500,
			Date:        day(2024, 12, 1),
			Status:      models.StatusCompleted,
			ServiceID:   "1",
			Notes:       "效果很好，皮膚變得更光滑",
		},
		{
			ID:          "2",
			CustomerID:  "1",
			Type:        models.ActivityAppointment,
			Title:       "深層保濕護膚",
			Description: "90分鐘深層保濕護膚療程",
			Amount:      1500,
			Date:        day(2024, 12, 20),
			Status:      models.StatusScheduled,
			ServiceID:   "1",
			Notes:       "下午3點預約，準備做聖誕節前保養",
		},
		{
			ID:          "6",
			CustomerID:  "1",
			Type:        models.ActivityAppointment,
			Title:       "精油SPA按摩",
			Description: "120分鐘全身精油放鬆按摩",
			Amount:      2200,
			Date:        day(2024, 12, 25),
			Status:      models.StatusScheduled,
			ServiceID:   "2",
			Notes:       "聖誕節特別療程，已確認預約",
		},
		{
			ID:          "7",
			CustomerID:  "1",
			Type:        models.ActivityAppointment,
			Title:       "臉部深層清潔",
			Description: "60分鐘專業臉部清潔護理",
			Amount:      1200,
			Date:        day(2024, 12, 28),
			Status:      models.StatusScheduled,
			ServiceID:   "3",
			Notes:       "年末深層清潔，為新年做準備",
		},
		{
			ID:          "3",
			CustomerID:  "1",
			Type:        models.ActivityPayment,
			Title:       "付款紀錄",
			Description: "深層清潔護膚付款",
			Amount:      1500,
			Date:        day(2024, 12, 1),
			Status:      models.StatusCompleted,
		},
		{
			ID:          "4",
			CustomerID:  "1",
			Type:        models.ActivityService,
			Title:       "精油按摩",
			Description: "120分鐘全身精油按摩",
			Amount:      2000,
			Date:        day(2024, 11, 20),
			Status:      models.StatusCompleted,
			ServiceID:   "2",
			Notes:       "放鬆效果很好",
		},
		{
			ID:          "5",
			CustomerID:  "1",
			Type:        models.ActivityConsultation,
			Title:       "膚質諮詢",
			Description: "膚質分析和護膚建議",
			Date:        day(2024, 11, 10),
			Status:      models.StatusCompleted,
			Notes:       "建議使用保濕產品",
		},
		{
			ID:          "8",
			CustomerID:  "2",
			Type:        models.ActivityAppointment,
			Title:       "個人健身指導",
			Description: "60分鐘一對一健身訓練",
			Amount:      1200,
			Date:        day(2024, 12, 18),
			Status:      models.StatusScheduled,
			ServiceID:   "4",
			Notes:       "專注下半身訓練",
		},
		{
			ID:          "9",
			CustomerID:  "2",
			Type:        models.ActivityService,
			Title:       "體能評估",
			Description: "全面體能評估和訓練計畫制定",
			Amount:      800,
			Date:        day(2024, 12, 5),
			Status:      models.StatusCompleted,
			ServiceID:   "4",
			Notes:       "體能狀況良好，可進行中強度訓練",
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}
