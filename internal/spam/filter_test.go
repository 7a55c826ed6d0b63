package spam

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sairaalvidatascientist-tech/Sentilytics/internal/domain"
)

func TestFilter(t *testing.T) {
	posts := []domain.Post{
		{ID: "1", Text: "Genuine opinion about the product"},
		{ID: "2", Text: "BUY NOW and get rich!!!"},
		{ID: "3", Text: "Another honest take"},
		{ID: "4", Text: "free money, Click Here today"},
	}

	kept := Filter(posts)

	assert.Len(t, kept, 2)
	assert.Equal(t, "1", kept[0].ID)
	assert.Equal(t, "3", kept[1].ID)
}

func TestFilterAllSpam(t *testing.T) {
	posts := []domain.Post{
		{Text: "limited offer just for you"},
		{Text: "act now before it is gone"},
	}

	assert.Empty(t, Filter(posts))
}

func TestIsSpamCaseInsensitive(t *testing.T) {
	assert.True(t, IsSpam("LiMiTeD OfFeR inside"))
	assert.False(t, IsSpam("limited time was fun"))
	assert.False(t, IsSpam(""))
}
