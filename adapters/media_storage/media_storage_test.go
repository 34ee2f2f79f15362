package media_storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

func TestPublicID(t *testing.T) {
	assert.Equal(t, "portfolio/1st_work", PublicID("portfolio", "/1st_work.jpg"))
	assert.Equal(t, "portfolio/human", PublicID("/portfolio/", "human.avif"))
	assert.Equal(t, "Event_Ticket", PublicID("", "/Event_Ticket.png"))
	assert.Equal(t, "profile", AssetName("/images/profile.jpeg"))
}

func TestLocalImages(t *testing.T) {
	images := NewLocalImages("/assets/")

	assert.Equal(t, "/assets/human.avif", images.Resolve("/human.avif"))
	assert.Equal(t, "/assets/img/a.png", images.Resolve("img/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", images.Resolve("https://cdn.example.com/a.png"))
	assert.Equal(t, "", images.Resolve(""))
}

func TestCloudinaryResolve(t *testing.T) {
	adapter, err := NewCloudinaryAdapter("demo", "key", "secret", "portfolio", logger.NewNop())
	require.NoError(t, err)

	url := adapter.Resolve("/Event_Ticket.png")
	assert.Contains(t, url, "https://res.cloudinary.com/demo/image/upload/")
	assert.Contains(t, url, "f_auto,q_auto")
	assert.Contains(t, url, "portfolio/Event_Ticket")

	assert.Equal(t, "https://example.com/x.png", adapter.Resolve("https://example.com/x.png"))
}

func TestCloudinaryRequiresCloudName(t *testing.T) {
	_, err := NewCloudinaryAdapter("", "key", "secret", "portfolio", logger.NewNop())
	assert.Error(t, err)
}
