package reportsvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	shopmodels "momentum_pos/internal/api/workshop/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/logger"
	"momentum_pos/internal/utility"
)

// Chi phí vận hành ước tính bằng 50% doanh thu khi chưa có sổ chi phí riêng
const estimatedCostRatio = 0.5

// dashboardCacheKey và dashboardCacheTTL cấu hình cache Redis cho dashboard
const (
	dashboardCacheKey = "reports:dashboard:summary"
	dashboardCacheTTL = 30 * time.Second
)

// Màu hiển thị cho từng phương thức thanh toán trên biểu đồ
var paymentMethodColors = map[string]string{
	shopmodels.PaymentMethodCash:   "#10B981",
	shopmodels.PaymentMethodCard:   "#3B82F6",
	shopmodels.PaymentMethodOnline: "#8B5CF6",
	shopmodels.PaymentMethodCheque: "#F59E0B",
	shopmodels.PaymentMethodOther:  "#6B7280",
}

// FinancialOverview là số liệu tài chính tổng hợp của một khoảng thời gian
type FinancialOverview struct {
	Period       string             `json:"period"`
	TotalRevenue float64            `json:"totalRevenue"`
	NetProfit    float64            `json:"netProfit"`
	ProfitMargin float64            `json:"profitMargin"`
	InvoiceCount int64              `json:"invoiceCount"`
	ByMethod     map[string]float64 `json:"byMethod"`
}

// TrendPoint là một điểm trên biểu đồ doanh thu theo tháng
type TrendPoint struct {
	Month   string  `json:"month"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Count   int64   `json:"count"`
}

// PaymentMethodRow là tỷ trọng của một phương thức thanh toán
type PaymentMethodRow struct {
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// PopularServiceRow là một dịch vụ được làm nhiều trong kỳ
type PopularServiceRow struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// DailyRow là hiệu suất của một ngày
type DailyRow struct {
	Date    string  `json:"date"`
	Jobs    int64   `json:"jobs"`
	Revenue float64 `json:"revenue"`
}

// DashboardSummary là số liệu tổng quan cho màn hình chính
type DashboardSummary struct {
	TodayJobs      int64            `json:"todayJobs"`
	JobsByStatus   map[string]int64 `json:"jobsByStatus"`
	TotalCustomers int64            `json:"totalCustomers"`
	TodayRevenue   float64          `json:"todayRevenue"`
}

// ReportsService tổng hợp số liệu báo cáo từ hóa đơn, job và khách hàng.
// Dashboard summary được cache qua Redis, không có Redis thì rơi về cache
// trong bộ nhớ tiến trình.
type ReportsService struct {
	invoices  *basesvc.BaseServiceMongoImpl[shopmodels.Invoice]
	jobs      *basesvc.BaseServiceMongoImpl[shopmodels.Job]
	customers *basesvc.BaseServiceMongoImpl[shopmodels.Customer]
	redis     *redis.Client
	local     *utility.Cache
}

// NewReportsService tạo instance mới của ReportsService
func NewReportsService(a *app.App) *ReportsService {
	s := &ReportsService{
		invoices:  basesvc.NewBaseServiceMongo[shopmodels.Invoice](a.Col(app.MongoColNames.Invoices)),
		jobs:      basesvc.NewBaseServiceMongo[shopmodels.Job](a.Col(app.MongoColNames.Jobs)),
		customers: basesvc.NewBaseServiceMongo[shopmodels.Customer](a.Col(app.MongoColNames.Customers)),
		redis:     a.Redis,
	}
	if s.redis == nil {
		s.local = utility.NewCache(dashboardCacheTTL, time.Minute)
	}
	return s
}

// paidInvoiceFilter lọc các hóa đơn đã thanh toán, còn hiệu lực, trong khoảng [start, end)
func paidInvoiceFilter(start, end int64) bson.M {
	return bson.M{
		"status":    shopmodels.InvoiceStatusPaid,
		"lifecycle": basemodels.LifecycleActive,
		"date":      bson.M{"$gte": start, "$lt": end},
	}
}

// FinancialOverview trả về doanh thu, lợi nhuận và cơ cấu thanh toán trong kỳ
func (s *ReportsService) FinancialOverview(ctx context.Context, period string, now time.Time) (*FinancialOverview, error) {
	start, end, err := PeriodRange(period, now)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Method string  `bson:"_id"`
		Amount float64 `bson:"amount"`
		Count  int64   `bson:"count"`
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: paidInvoiceFilter(start, end)}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$paymentMethod",
			"amount": bson.M{"$sum": "$amount"},
			"count":  bson.M{"$sum": 1},
		}}},
	}
	if err := s.invoices.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	overview := &FinancialOverview{
		Period:   period,
		ByMethod: make(map[string]float64),
	}
	if overview.Period == "" {
		overview.Period = PeriodMonth
	}
	for _, row := range rows {
		method := row.Method
		if method == "" {
			method = shopmodels.PaymentMethodOther
		}
		overview.ByMethod[method] += row.Amount
		overview.TotalRevenue += row.Amount
		overview.InvoiceCount += row.Count
	}
	overview.NetProfit = overview.TotalRevenue * (1 - estimatedCostRatio)
	if overview.TotalRevenue > 0 {
		overview.ProfitMargin = (1 - estimatedCostRatio) * 100
	}
	return overview, nil
}

// RevenueTrend trả về doanh thu theo tháng của N tháng gần nhất, tháng cũ trước
func (s *ReportsService) RevenueTrend(ctx context.Context, months int, now time.Time) ([]TrendPoint, error) {
	if months < 1 || months > 24 {
		months = 6
	}
	local := now.In(PKT)
	start := utility.UnixMilli(time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, PKT).AddDate(0, -(months - 1), 0))

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Revenue float64 `bson:"revenue"`
		Count   int64   `bson:"count"`
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":    shopmodels.InvoiceStatusPaid,
			"lifecycle": basemodels.LifecycleActive,
			"date":      bson.M{"$gte": start},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": bson.M{"date": bson.M{"$toDate": "$date"}, "timezone": "+05:00"}},
				"month": bson.M{"$month": bson.M{"date": bson.M{"$toDate": "$date"}, "timezone": "+05:00"}},
			},
			"revenue": bson.M{"$sum": "$amount"},
			"count":   bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}}},
	}
	if err := s.invoices.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	byKey := make(map[[2]int]TrendPoint, len(rows))
	for _, row := range rows {
		byKey[[2]int{row.ID.Year, row.ID.Month}] = TrendPoint{
			Month:   time.Month(row.ID.Month).String(),
			Year:    row.ID.Year,
			Revenue: row.Revenue,
			Profit:  row.Revenue * (1 - estimatedCostRatio),
			Count:   row.Count,
		}
	}

	// Trả về đủ N tháng, tháng không có hóa đơn vẫn xuất hiện với doanh thu 0
	trend := make([]TrendPoint, 0, months)
	cursor := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, PKT).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		key := [2]int{cursor.Year(), int(cursor.Month())}
		point, ok := byKey[key]
		if !ok {
			point = TrendPoint{Month: cursor.Month().String(), Year: cursor.Year()}
		}
		trend = append(trend, point)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return trend, nil
}

// PaymentMethods trả về tỷ trọng từng phương thức thanh toán trong kỳ
func (s *ReportsService) PaymentMethods(ctx context.Context, period string, now time.Time) ([]PaymentMethodRow, error) {
	overview, err := s.FinancialOverview(ctx, period, now)
	if err != nil {
		return nil, err
	}

	result := make([]PaymentMethodRow, 0, len(shopmodels.PaymentMethods))
	for _, method := range shopmodels.PaymentMethods {
		amount := overview.ByMethod[method]
		row := PaymentMethodRow{
			Method: method,
			Amount: amount,
			Color:  paymentMethodColors[method],
		}
		if overview.TotalRevenue > 0 {
			row.Percentage = amount / overview.TotalRevenue * 100
		}
		result = append(result, row)
	}

	// Bổ sung số hóa đơn theo từng phương thức
	start, end, err := PeriodRange(period, now)
	if err != nil {
		return nil, err
	}
	for i := range result {
		filter := paidInvoiceFilter(start, end)
		filter["paymentMethod"] = result[i].Method
		count, err := s.invoices.CountDocuments(ctx, filter)
		if err != nil {
			return nil, err
		}
		result[i].Count = count
	}
	return result, nil
}

// PopularServices trả về tối đa 10 dịch vụ được làm nhiều nhất trong kỳ
func (s *ReportsService) PopularServices(ctx context.Context, period string, now time.Time) ([]PopularServiceRow, error) {
	start, end, err := PeriodRange(period, now)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Title   string  `bson:"_id"`
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": start, "$lt": end}}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$title",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "revenue", Value: -1}}}},
		{{Key: "$limit", Value: 10}},
	}
	if err := s.jobs.Aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	result := make([]PopularServiceRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, PopularServiceRow{Name: row.Title, Count: row.Count, Revenue: row.Revenue})
	}
	return result, nil
}

// DailyPerformance trả về số job và doanh thu từng ngày của N ngày gần nhất,
// ngày cũ trước. Ranh giới ngày tính theo múi giờ PKT.
func (s *ReportsService) DailyPerformance(ctx context.Context, days int, now time.Time) ([]DailyRow, error) {
	if days < 1 || days > 90 {
		days = 7
	}
	local := now.In(PKT)
	start := utility.UnixMilli(utility.StartOfDay(local).AddDate(0, 0, -(days - 1)))
	end := utility.UnixMilli(local)

	jobs, err := s.jobs.Find(ctx, bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}, options.Find())
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.Find(ctx, paidInvoiceFilter(start, end+1), options.Find())
	if err != nil {
		return nil, err
	}

	jobsByDay := make(map[string]int64)
	for _, job := range jobs {
		jobsByDay[DayBucket(job.CreatedAt)]++
	}
	revenueByDay := make(map[string]float64)
	for _, invoice := range invoices {
		revenueByDay[DayBucket(invoice.Date)] += invoice.Amount
	}

	result := make([]DailyRow, 0, days)
	for _, day := range LastNDays(days, now) {
		result = append(result, DailyRow{
			Date:    day,
			Jobs:    jobsByDay[day],
			Revenue: revenueByDay[day],
		})
	}
	return result, nil
}

// DashboardSummary trả về số liệu tổng quan hôm nay, có cache Redis ngắn hạn
func (s *ReportsService) DashboardSummary(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var summary DashboardSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	} else if cached, ok := s.local.Get(dashboardCacheKey); ok {
		if summary, ok := cached.(*DashboardSummary); ok {
			return summary, nil
		}
	}

	summary, err := s.buildDashboardSummary(ctx, now)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.redis.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				logger.WithModule("reports").WithError(err).Warn("Không ghi được cache dashboard")
			}
		}
	} else {
		s.local.Set(dashboardCacheKey, summary)
	}
	return summary, nil
}

func (s *ReportsService) buildDashboardSummary(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	startOfToday := utility.UnixMilli(utility.StartOfDay(now.In(PKT)))

	todayJobs, err := s.jobs.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": startOfToday}})
	if err != nil {
		return nil, err
	}

	var statusRows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	if err := s.jobs.Aggregate(ctx, pipeline, &statusRows); err != nil {
		return nil, err
	}
	jobsByStatus := map[string]int64{
		shopmodels.JobStatusPending:    0,
		shopmodels.JobStatusInProgress: 0,
		shopmodels.JobStatusCompleted:  0,
		shopmodels.JobStatusDelivered:  0,
	}
	for _, row := range statusRows {
		jobsByStatus[row.Status] = row.Count
	}

	totalCustomers, err := s.customers.CountDocuments(ctx, bson.M{"lifecycle": basemodels.LifecycleActive})
	if err != nil {
		return nil, err
	}

	var revenueRows []struct {
		Total float64 `bson:"total"`
	}
	revenuePipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":    shopmodels.InvoiceStatusPaid,
			"lifecycle": basemodels.LifecycleActive,
			"date":      bson.M{"$gte": startOfToday},
		}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	}
	if err := s.invoices.Aggregate(ctx, revenuePipeline, &revenueRows); err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TodayJobs:      todayJobs,
		JobsByStatus:   jobsByStatus,
		TotalCustomers: totalCustomers,
	}
	if len(revenueRows) > 0 {
		summary.TodayRevenue = revenueRows[0].Total
	}
	return summary, nil
}
