package utils

import (
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/dto/requests"
	"net/http"
	"strings"
)

func BuildFindDoctorsRequest(r *http.Request) *requests.FindDoctors {
	query := r.URL.Query()
	return &requests.FindDoctors{
		Search:    query.Get(constvars.URLQueryParamSearch),
		Specialty: strings.TrimSpace(query.Get(constvars.URLQueryParamSpecialty)),
		Location:  strings.TrimSpace(query.Get(constvars.URLQueryParamLocation)),
		Sort:      strings.ToLower(strings.TrimSpace(query.Get(constvars.URLQueryParamSort))),
	}
}
