package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"resortly/config"
	"resortly/constants"
	"resortly/dto"
	"resortly/models"
	"resortly/response"
	"resortly/services"
	"resortly/services/notification"
	"resortly/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/gin-gonic/gin"
)

var notifier notification.Service

// SetNotifier thiết lập service gửi thông báo realtime cho các controller
func SetNotifier(s notification.Service) {
	notifier = s
}

func broadcast(message string) {
	if notifier == nil {
		return
	}
	if err := notifier.SendMessage(message); err != nil {
		log.Printf("Lỗi khi gửi thông báo: %v", err)
	}
}

// invalidateResortCaches xóa cache danh sách resort sau khi dữ liệu thay đổi
func invalidateResortCaches(c *gin.Context) {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteKeysByPattern(c.Request.Context(), config.RedisClient, "resorts:*"); err != nil {
		log.Printf("Lỗi khi xóa cache resort: %v", err)
	}
}

func toResortResponse(resort models.Resort) dto.ResortResponse {
	return dto.ResortResponse{
		ID:               resort.ID,
		Type:             resort.Type,
		Name:             resort.Name,
		Address:          resort.Address,
		Province:         resort.Province,
		District:         resort.District,
		CreateAt:         resort.CreateAt,
		UpdateAt:         resort.UpdateAt,
		Avatar:           resort.Avatar,
		ShortDescription: resort.ShortDescription,
		Status:           resort.Status,
		Visible:          resort.Visible,
		Price:            resort.Price,
		People:           resort.People,
		NumBed:           resort.NumBed,
		Star:             resort.Star,
		Amenities:        resort.Amenities,
	}
}

// GetAllResorts trả về danh sách resort cho trang quản trị.
// Admin thấy tất cả, chủ resort chỉ thấy resort của mình.
func GetAllResorts(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var cacheKey string
	if currentUserRole == constants.RoleAdmin {
		cacheKey = "resorts:admin"
	} else {
		cacheKey = fmt.Sprintf("resorts:owner:%d", currentUserID)
	}

	var allResorts []models.Resort

	cacheMiss := true
	if config.RedisClient != nil {
		if err := services.GetFromRedis(c.Request.Context(), config.RedisClient, cacheKey, &allResorts); err == nil && len(allResorts) > 0 {
			cacheMiss = false
		}
	}

	if cacheMiss {
		tx := config.DB.Model(&models.Resort{}).
			Preload("Rooms").
			Preload("Amenities").
			Preload("User")
		if currentUserRole == constants.RoleOwner {
			tx = tx.Where("user_id = ?", currentUserID)
		}

		if err := tx.Find(&allResorts).Error; err != nil {
			response.ServerError(c)
			return
		}

		if config.RedisClient != nil {
			if err := services.SetToRedis(c.Request.Context(), config.RedisClient, cacheKey, allResorts, 60*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách resort vào Redis: %v", err)
			}
		}
	}

	// Áp dụng filter từ dữ liệu cache
	typeFilter := c.Query("type")
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")
	provinceFilter := c.Query("province")

	filteredResorts := make([]models.Resort, 0)
	for _, resort := range allResorts {
		if typeFilter != "" {
			parsedTypeFilter, err := strconv.Atoi(typeFilter)
			if err == nil && resort.Type != parsedTypeFilter {
				continue
			}
		}
		if statusFilter != "" {
			parsedStatusFilter, err := strconv.Atoi(statusFilter)
			if err == nil && resort.Status != parsedStatusFilter {
				continue
			}
		}
		if nameFilter != "" {
			decodedNameFilter, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(resort.Name), strings.ToLower(decodedNameFilter)) {
				continue
			}
		}
		if provinceFilter != "" {
			decodedProvinceFilter, _ := url.QueryUnescape(provinceFilter)
			if !strings.Contains(strings.ToLower(resort.Province), strings.ToLower(decodedProvinceFilter)) {
				continue
			}
		}
		filteredResorts = append(filteredResorts, resort)
	}
	total := len(filteredResorts)

	// Xếp theo update mới nhất
	sort.Slice(filteredResorts, func(i, j int) bool {
		return filteredResorts[i].UpdateAt.After(filteredResorts[j].UpdateAt)
	})

	page, limit := getPagination(c)
	filteredResorts = paginateResorts(filteredResorts, page, limit)

	resortsResponse := make([]dto.ResortResponse, 0)
	for _, resort := range filteredResorts {
		resortsResponse = append(resortsResponse, toResortResponse(resort))
	}

	response.SuccessWithPagination(c, resortsResponse, page, limit, total)
}

func getPagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

func paginateResorts(resorts []models.Resort, page, limit int) []models.Resort {
	start := page * limit
	end := start + limit
	if start >= len(resorts) {
		return []models.Resort{}
	}
	if end > len(resorts) {
		return resorts[start:]
	}
	return resorts[start:end]
}

// loadPublicResorts lấy danh sách resort đã duyệt và đang hiển thị, có cache Redis
func loadPublicResorts(c *gin.Context) ([]models.Resort, error) {
	var resorts []models.Resort

	cacheKey := "resorts:public"
	if config.RedisClient != nil {
		if err := services.GetFromRedis(c.Request.Context(), config.RedisClient, cacheKey, &resorts); err == nil && len(resorts) > 0 {
			return resorts, nil
		}
	}

	err := config.DB.Model(&models.Resort{}).
		Preload("Rooms").
		Preload("Amenities").
		Where("status = ? AND visible = ?", constants.ResortStatusApproved, true).
		Find(&resorts).Error
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(c.Request.Context(), config.RedisClient, cacheKey, resorts, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách resort public vào Redis: %v", err)
		}
	}

	return resorts, nil
}

// busyRoomsInRange trả về các phòng đã kín trong khoảng [fromDate, toDate)
func busyRoomsInRange(fromDate, toDate time.Time) (map[uint]bool, error) {
	busy := make(map[uint]bool)

	var reservations []models.Reservation
	err := config.DB.Where("status = ? AND from_date < ? AND to_date > ?",
		constants.BookingStatusConfirmed, toDate, fromDate).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}

	for _, reservation := range reservations {
		busy[reservation.RoomID] = true
	}
	return busy, nil
}

func resortMatchesFilters(c *gin.Context, resort models.Resort) bool {
	if typeFilter := c.Query("type"); typeFilter != "" {
		parsedType, err := strconv.Atoi(typeFilter)
		if err == nil && resort.Type != parsedType {
			return false
		}
	}
	if nameFilter := c.Query("name"); nameFilter != "" {
		decodedNameFilter, _ := url.QueryUnescape(nameFilter)
		if !strings.Contains(strings.ToLower(resort.Name), strings.ToLower(decodedNameFilter)) {
			return false
		}
	}
	if provinceFilter := c.Query("province"); provinceFilter != "" {
		decodedProvinceFilter, _ := url.QueryUnescape(provinceFilter)
		if !strings.Contains(strings.ToLower(resort.Province), strings.ToLower(decodedProvinceFilter)) {
			return false
		}
	}
	if districtFilter := c.Query("district"); districtFilter != "" {
		decodedDistrictFilter, _ := url.QueryUnescape(districtFilter)
		if !strings.Contains(strings.ToLower(resort.District), strings.ToLower(decodedDistrictFilter)) {
			return false
		}
	}
	if priceMinFilter := c.Query("priceMin"); priceMinFilter != "" {
		if priceMin, err := strconv.Atoi(priceMinFilter); err == nil && resort.Price < priceMin {
			return false
		}
	}
	if priceMaxFilter := c.Query("priceMax"); priceMaxFilter != "" {
		if priceMax, err := strconv.Atoi(priceMaxFilter); err == nil && resort.Price > priceMax {
			return false
		}
	}

	if amenityFilterRaw := c.Query("amenityId"); amenityFilterRaw != "" {
		amenityIDs := parseIDList(amenityFilterRaw)
		if len(amenityIDs) > 0 {
			match := false
			for _, amenity := range resort.Amenities {
				for _, id := range amenityIDs {
					if amenity.Id == id {
						match = true
						break
					}
				}
				if match {
					break
				}
			}
			if !match {
				return false
			}
		}
	}

	return true
}

// parseIDList chuyển chuỗi query dạng "[1,2,3]" thành slice int
func parseIDList(raw string) []int {
	raw = strings.Trim(raw, "[]")
	ids := make([]int, 0)
	for _, part := range strings.Split(raw, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// GetPublicResorts trả về danh sách resort cho khách, chỉ gồm resort đã duyệt
// và đang hiển thị. Khi có fromDate/toDate thì loại resort đã kín phòng.
func GetPublicResorts(c *gin.Context) {
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	var fromDate, toDate time.Time
	var err error
	hasDateRange := false

	if fromDateStr != "" && toDateStr != "" {
		fromDate, toDate, err = validator.ValidateBookingDates(fromDateStr, toDateStr)
		if err != nil {
			response.BadRequest(c, "Khoảng ngày không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy")
			return
		}
		hasDateRange = true
	}

	allResorts, err := loadPublicResorts(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	var busyRooms map[uint]bool
	if hasDateRange {
		busyRooms, err = busyRoomsInRange(fromDate, toDate)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	filteredResorts := make([]models.Resort, 0)
	for _, resort := range allResorts {
		if !resortMatchesFilters(c, resort) {
			continue
		}

		if hasDateRange {
			hasFreeRoom := false
			for _, room := range resort.Rooms {
				if !busyRooms[room.RoomId] {
					hasFreeRoom = true
					break
				}
			}
			if !hasFreeRoom {
				continue
			}
		}

		filteredResorts = append(filteredResorts, resort)
	}

	// Xếp theo điểm đánh giá cao nhất
	sort.Slice(filteredResorts, func(i, j int) bool {
		return filteredResorts[i].Star > filteredResorts[j].Star
	})

	total := len(filteredResorts)
	page, limit := getPagination(c)
	filteredResorts = paginateResorts(filteredResorts, page, limit)

	resortsResponse := make([]dto.ResortResponse, 0)
	for _, resort := range filteredResorts {
		resortsResponse = append(resortsResponse, toResortResponse(resort))
	}

	response.SuccessWithPagination(c, resortsResponse, page, limit, total)
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

func extractStarFromQuery(query string) int {
	// Bắt số trước từ "sao"
	re := regexp.MustCompile(`(\d+)\s*sao`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	star, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return star
}

// Tách thông tin từ query và ánh xạ loại resort cùng số sao
func parseResortType(query string) (int, int) {
	resortKeywords := []string{"resort", "khu nghỉ dưỡng", "khu nghi duong"}
	hotelKeywords := []string{"khách sạn", "hotel", "khach san", "ks"}
	villaKeywords := []string{"villa", "biệt thự", "biet thu"}
	homestayKeywords := []string{"homestay", "căn hộ", "can ho", "nhà", "nha"}
	farmhouseKeywords := []string{"farmhouse", "nhà vườn", "nha vuon", "trang trại", "trang trai"}

	normalizedQuery := normalizeInput(query)
	star := extractStarFromQuery(normalizedQuery)

	matchers := []struct {
		resortType int
		matcher    *closestmatch.ClosestMatch
	}{
		{0, createMatcher(resortKeywords)},
		{1, createMatcher(hotelKeywords)},
		{2, createMatcher(villaKeywords)},
		{3, createMatcher(homestayKeywords)},
		{4, createMatcher(farmhouseKeywords)},
	}

	for _, entry := range matchers {
		match := entry.matcher.Closest(normalizedQuery)
		if match != "" && strings.Contains(normalizedQuery, match) {
			return entry.resortType, star
		}
	}

	return -1, star
}

// Tạo danh sách các giá trị duy nhất từ cơ sở dữ liệu cho closestmatch
func prepareUniqueList(resorts []models.Resort, field string) []string {
	uniqueValues := make(map[string]bool)

	for _, resort := range resorts {
		var value string
		switch field {
		case "province":
			value = resort.Province
		case "district":
			value = resort.District
		}
		if value != "" {
			uniqueValues[normalizeInput(value)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho resort
func calculateScore(query string, resort models.Resort, cmProvince, cmDistrict *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	resortType, star := parseResortType(normalizedQuery)
	score := 0

	if resortType != -1 && resortType == resort.Type {
		score += 20
	}
	if star != -1 && int(resort.Star) == star {
		score += 15
	}
	score += calculateLocationScore(normalizedQuery, resort, cmProvince, cmDistrict)
	score += calculateAmenityScore(normalizedQuery, resort.Amenities)

	return score
}

func calculateLocationScore(query string, resort models.Resort, cmProvince, cmDistrict *closestmatch.ClosestMatch) int {
	score := 0
	if cmProvince.Closest(query) == normalizeInput(resort.Province) {
		score += 13
	}
	if cmDistrict.Closest(query) == normalizeInput(resort.District) {
		score += 1
	}
	return score
}

func calculateAmenityScore(query string, amenities []models.Amenity) int {
	maxAmenityScore := 12
	amenityScore := 0

	for _, amenity := range amenities {
		normalizedAmenity := normalizeInput(amenity.Name)
		similarity := calculateSimilarity(query, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(query, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	return amenityScore
}

func filterAndScoreResorts(
	query string,
	resorts []models.Resort,
	cmProvince, cmDistrict *closestmatch.ClosestMatch,
) []dto.ScoredResort {
	var scoredResorts []dto.ScoredResort
	scoreCh := make(chan dto.ScoredResort, len(resorts))
	var wg sync.WaitGroup

	for _, resort := range resorts {
		wg.Add(1)
		go func(resort models.Resort) {
			defer wg.Done()
			score := calculateScore(query, resort, cmProvince, cmDistrict)
			if score > 0 {
				scoreCh <- dto.ScoredResort{
					Resort: resort,
					Score:  score,
				}
			}
		}(resort)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredResort := range scoreCh {
		scoredResorts = append(scoredResorts, scoredResort)
	}

	sort.SliceStable(scoredResorts, func(i, j int) bool {
		return scoredResorts[i].Score > scoredResorts[j].Score
	})
	return scoredResorts
}

// SearchResorts tìm resort theo câu tìm kiếm tự do, chấp nhận gõ sai dấu
func SearchResorts(c *gin.Context) {
	searchQuery := c.Query("search")
	if searchQuery == "" {
		response.BadRequest(c, "search là bắt buộc")
		return
	}

	allResorts, err := loadPublicResorts(c)
	if err != nil {
		response.ServerError(c)
		return
	}

	cmProvince := createMatcher(prepareUniqueList(allResorts, "province"))
	cmDistrict := createMatcher(prepareUniqueList(allResorts, "district"))

	scoredResorts := filterAndScoreResorts(searchQuery, allResorts, cmProvince, cmDistrict)

	matchedResorts := make([]models.Resort, 0, len(scoredResorts))
	for _, scoredResort := range scoredResorts {
		matchedResorts = append(matchedResorts, scoredResort.Resort)
	}

	total := len(matchedResorts)
	page, limit := getPagination(c)
	matchedResorts = paginateResorts(matchedResorts, page, limit)

	resortsResponse := make([]dto.ResortResponse, 0)
	for _, resort := range matchedResorts {
		resortsResponse = append(resortsResponse, toResortResponse(resort))
	}

	response.SuccessWithPagination(c, resortsResponse, page, limit, total)
}

// GetResortDetail trả về chi tiết resort kèm phòng và chủ sở hữu
func GetResortDetail(c *gin.Context) {
	resortID := c.Param("id")

	var resort models.Resort
	err := config.DB.Preload("Rooms").
		Preload("Amenities").
		Preload("User").
		First(&resort, resortID).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	// Resort chưa duyệt hoặc đang ẩn chỉ chủ sở hữu và admin xem được
	if resort.Status != constants.ResortStatusApproved || !resort.Visible {
		currentUserID := c.GetUint("userID")
		currentUserRole := c.GetInt("userRole")
		if currentUserRole != constants.RoleAdmin && currentUserID != resort.UserID {
			response.NotFound(c)
			return
		}
	}

	rooms := make([]dto.RoomResponse, 0)
	for _, room := range resort.Rooms {
		rooms = append(rooms, toRoomResponse(room))
	}

	detail := dto.ResortDetailResponse{
		ResortResponse: toResortResponse(resort),
		Img:            resort.Img,
		Description:    resort.Description,
		Owner: dto.ActorResponse{
			Name:  resort.User.Name,
			Email: resort.User.Email,
		},
		Rooms: rooms,
	}

	response.Success(c, detail)
}

func getLowestPriceFromRooms(rooms []models.Room) int {
	lowest := 0
	for _, room := range rooms {
		if lowest == 0 || room.Price < lowest {
			lowest = room.Price
		}
	}
	return lowest
}

// CreateResort tạo resort mới kèm ảnh và danh sách phòng.
// Resort mới luôn ở trạng thái chờ duyệt.
func CreateResort(c *gin.Context) {
	currentUserID := c.GetUint("userID")

	var req dto.CreateResortRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var rooms []models.Room
	if req.Rooms != "" {
		var roomInputs []dto.CreateRoomInput
		if err := json.Unmarshal([]byte(req.Rooms), &roomInputs); err != nil {
			response.BadRequest(c, "Danh sách phòng không hợp lệ")
			return
		}
		for _, input := range roomInputs {
			rooms = append(rooms, models.Room{
				RoomName:    input.RoomName,
				Price:       input.Price,
				Description: input.Description,
				NumBed:      input.NumBed,
				People:      input.People,
			})
		}
	}

	// Upload ảnh lên Cloudinary, ảnh đầu tiên làm avatar
	var urls []string
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["images"] {
			src, err := file.Open()
			if err != nil {
				response.BadRequest(c, "Lỗi khi mở file")
				return
			}

			resp, err := config.Cloudinary.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "resorts"})
			src.Close()
			if err != nil {
				response.ServerError(c)
				return
			}
			urls = append(urls, resp.SecureURL)
		}
	}

	imgJSON, err := json.Marshal(urls)
	if err != nil {
		response.ServerError(c)
		return
	}

	var amenities []models.Amenity
	if len(req.AmenityIDs) > 0 {
		if err := config.DB.Where("id IN ?", req.AmenityIDs).Find(&amenities).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	resort := models.Resort{
		Type:             req.Type,
		UserID:           currentUserID,
		Name:             req.Name,
		Address:          req.Address,
		Province:         req.Province,
		District:         req.District,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Img:              imgJSON,
		Status:           constants.ResortStatusPending,
		Visible:          true,
		Price:            req.Price,
		People:           req.People,
		NumBed:           req.NumBed,
		Amenities:        amenities,
		Rooms:            rooms,
	}

	if len(urls) > 0 {
		resort.Avatar = urls[0]
	}

	if lowest := getLowestPriceFromRooms(rooms); lowest > 0 {
		resort.Price = lowest
	}

	if err := validator.ValidateResort(&resort); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&resort).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateResortCaches(c)
	broadcast(notification.NewModerationMessageBuilder(resort.ID, resort.Name).Build())

	response.Success(c, toResortResponse(resort))
}

// UpdateResort cho chủ resort hoặc admin chỉnh sửa thông tin
func UpdateResort(c *gin.Context) {
	currentUserID := c.GetUint("userID")
	currentUserRole := c.GetInt("userRole")

	var req dto.UpdateResortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var resort models.Resort
	if err := config.DB.Preload("Rooms").First(&resort, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole != constants.RoleAdmin && resort.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	if req.Name != "" {
		resort.Name = req.Name
	}
	if req.Type != nil {
		resort.Type = *req.Type
	}
	if req.Address != "" {
		resort.Address = req.Address
	}
	if req.Province != "" {
		resort.Province = req.Province
	}
	if req.District != "" {
		resort.District = req.District
	}
	if req.ShortDescription != "" {
		resort.ShortDescription = req.ShortDescription
	}
	if req.Description != "" {
		resort.Description = req.Description
	}
	if req.Price != nil {
		resort.Price = *req.Price
	}
	if req.Visible != nil {
		resort.Visible = *req.Visible
	}

	if len(req.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := config.DB.Where("id IN ?", req.AmenityIDs).Find(&amenities).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := config.DB.Model(&resort).Association("Amenities").Replace(amenities); err != nil {
			response.ServerError(c)
			return
		}
	}

	if err := validator.ValidateResort(&resort); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&resort).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateResortCaches(c)

	response.Success(c, toResortResponse(resort))
}

// ChangeResortStatus cho admin duyệt hoặc từ chối resort
func ChangeResortStatus(c *gin.Context) {
	resortID := c.Param("id")

	var req dto.ChangeResortStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var resort models.Resort
	if err := config.DB.First(&resort, resortID).Error; err != nil {
		response.NotFound(c)
		return
	}

	resort.Status = req.Status
	if req.Visible != nil {
		resort.Visible = *req.Visible
	}

	if err := resort.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&resort).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateResortCaches(c)

	response.Success(c, toResortResponse(resort))
}
