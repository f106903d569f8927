package stores

import (
	"time"

	"studio-console-backend/models"
)

// Fixed datasets the mock external API answers with. They stand in for a real
// provider backend until one exists; LoadDataByID resolves against these
// tables only.

var mockServiceData = models.ServiceDataset{
	ServiceInfo: []models.ServiceProvider{
		{
			Name:     "哆啦美容美體中心",
			Tel:      "123-456-7890",
			Cell:     "098-765-4321",
			LineLink: "https://line.me/ti/p/1234567890",
			Address: models.Address{
				Street: "123 Example St",
				City:   "Example City",
				State:  "EX",
				Zip:    "12345",
			},
			Services: []models.ExternalService{
				{
					ServiceName: "深層清潔護膚療程",
					ServiceID:   "SB001",
					Amount:      1500,
					Status:      models.StatusCompleted,
					Date:        "2025-12-01",
					TimeStart:   "10:00 AM",
					TimeEnd:     "11:30 AM",
					Description: "90分鐘深層清潔護膚療程",
					Notes:       "效果很好，皮膚變得更光滑",
				},
				{
					ServiceName: "全身按摩",
					ServiceID:   "SB002",
					Amount:      2000,
					Status:      models.StatusScheduled,
					Date:        "2025-08-05",
					TimeStart:   "02:00 PM",
					TimeEnd:     "03:00 PM",
					Description: "60分鐘全身放鬆按摩",
					Notes:       "需要特別注意肩頸部位",
				},
				{
					ServiceName: "美甲服務",
					ServiceID:   "SB003",
					Amount:      800,
					Status:      models.StatusCompleted,
					Date:        "2025-10-10",
					TimeStart:   "11:00 AM",
					TimeEnd:     "12:00 PM",
					Description: "美甲和手部護理服務",
				},
				{
					ServiceName: "深層護髮護理",
					ServiceID:   "SB004",
					Amount:      2200,
					Status:      models.StatusCompleted,
					Date:        "2025-08-05",
					TimeStart:   "09:00 AM",
					TimeEnd:     "10:30 AM",
					Description: "90分鐘深層修護護髮療程",
					Notes:       "髮質明顯改善，光澤度增加",
				},
				{
					ServiceName: "臉部SPA護理",
					ServiceID:   "SB005",
					Amount:      1800,
					Status:      models.StatusScheduled,
					Date:        "2025-06-15",
					TimeStart:   "03:00 PM",
					TimeEnd:     "04:30 PM",
					Description: "90分鐘臉部深層護理",
					Notes:       "夏季護膚專案",
				},
			},
		},
		{
			Name:     "大肌肌健身房",
			Tel:      "987-654-3210",
			Cell:     "012-345-6789",
			LineLink: "https://line.me/ti/p/0987654321",
			Address: models.Address{
				Street: "456 Sample Ave",
				City:   "Sample City",
				State:  "SA",
				Zip:    "67890",
			},
			Services: []models.ExternalService{
				{
					ServiceName: "個人訓練課程",
					ServiceID:   "SB006",
					Amount:      2500,
					Status:      models.StatusScheduled,
					Date:        "2025-08-10",
					TimeStart:   "09:00 AM",
					TimeEnd:     "10:00 AM",
					Description: "60分鐘個人訓練課程",
					Notes:       "需要攜帶運動鞋和水壺",
				},
				{
					ServiceName: "瑜伽課程",
					ServiceID:   "SB007",
					Amount:      1200,
					Status:      models.StatusCompleted,
					Date:        "2025-10-15",
					TimeStart:   "06:00 PM",
					TimeEnd:     "07:00 PM",
					Description: "60分鐘瑜伽放鬆課程",
				},
				{
					ServiceName: "體能評估",
					ServiceID:   "SB008",
					Amount:      800,
					Status:      models.StatusCompleted,
					Date:        "2025-12-05",
					TimeStart:   "10:00 AM",
					TimeEnd:     "11:00 AM",
					Description: "全面體能評估和訓練計畫制定",
					Notes:       "體能狀況良好，可進行中強度訓練",
				},
			},
		},
	},
}

var mockUserProfiles = map[string]models.UserProfile{
	"uuid-wang-xiaomei-001": {
		UUID:              "uuid-wang-xiaomei-001",
		Name:              "王小美",
		Phone:             "0912-345-678",
		Email:             "wang@example.com",
		Address:           "台北市信義區信義路123號",
		PreferredServices: []string{"beauty", "spa"},
		TotalSpent:        15000,
		LastVisit:         timePtr(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)),
		RegisteredAt:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	"uuid-wang-damei-002": {
		UUID:              "uuid-wang-damei-002",
		Name:              "王大美",
		Phone:             "0987-654-321",
		Email:             "wangdamei@example.com",
		Address:           "新北市板橋區中山路456號",
		PreferredServices: []string{"hair", "fitness"},
		TotalSpent:        22000,
		LastVisit:         timePtr(time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)),
		RegisteredAt:      time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
	},
}

func timePtr(t time.Time) *time.Time {
	return &t
}
