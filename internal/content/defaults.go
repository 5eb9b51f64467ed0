package content

import "ishan.sh/internal/models"

// Defaults returns the built-in project cards in display order. A fresh slice
// is returned on every call so callers may modify it
func Defaults() *models.ProjectList {
	return &models.ProjectList{
		Projects: []models.Project{
			{
				ID:    "toy-image-search-engine",
				Title: "Toy Image Search Engine",
				Description: "Upload an image and find images containing the same object or " +
					"images with a similar situation (for example: a crowd of people)",
				Image: models.Image{Path: "/projects/project1_banner.gif", Alt: "Project 1"},
				Links: []models.Link{
					{Label: "View Article", URL: "./toy-image-search-engine"},
					{Label: "Github", URL: "https://github.com/ishandotsh/resnet-search-engine", External: true},
					{Label: "Live Demo", URL: "https://resnet-search-engine.herokuapp.com/", External: true},
				},
			},
			{
				ID:          "minimax-visualizer",
				Title:       "Minimax Visualizer",
				Description: "A playable tic-tac-toe game that shows the decisions made by the minimax algorithm.",
				Image:       models.Image{Path: "/projects/project2_banner.png", Alt: "Project 2"},
				Links: []models.Link{
					{Label: "Github", URL: "https://github.com/ishandotsh/minimax-visualizer", External: true},
					{Label: "Live Demo", URL: "https://minimaxttt.netlify.app/", External: true},
				},
			},
		},
	}
}
