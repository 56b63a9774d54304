package doctors

import "medconnect-service/internal/app/models"

// QueryController owns a query over a fixed catalog and recomputes the
// visible list when the query changes. It is not safe for concurrent use.
type QueryController struct {
	catalog []models.Doctor
	query   Query

	cached      []models.Doctor
	cachedQuery Query
	cacheValid  bool
}

func NewQueryController(catalog []models.Doctor) *QueryController {
	return &QueryController{
		catalog: catalog,
		query:   DefaultQuery(),
	}
}

func (c *QueryController) Query() Query {
	return c.query
}

func (c *QueryController) SetQuery(query Query) {
	c.query = query
}

func (c *QueryController) SetSearch(search string) {
	c.query.Search = search
}

func (c *QueryController) SetSpecialty(specialty string) {
	c.query.Specialty = specialty
}

func (c *QueryController) SetLocation(location string) {
	c.query.Location = location
}

func (c *QueryController) SetSortKey(key SortKey) {
	c.query.SortKey = key
}

// VisibleResults returns a copy of the filtered and ranked list for the current query.
func (c *QueryController) VisibleResults() []models.Doctor {
	if !c.cacheValid || c.cachedQuery != c.query {
		c.cached = FilterAndSort(c.catalog, c.query)
		c.cachedQuery = c.query
		c.cacheValid = true
	}
	return append([]models.Doctor{}, c.cached...)
}
