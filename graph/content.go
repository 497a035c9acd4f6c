package graph

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/lumicoach/coaching-api/db"
	"github.com/lumicoach/coaching-api/models"
)

func resolveArticles(p graphql.ResolveParams) (interface{}, error) {
	query := db.DB.Preload("Comments").Order("created_at desc")
	// Drafts are only visible to admins.
	if v := ViewerFrom(p.Context); v == nil || v.Role != models.RoleAdmin {
		query = query.Where("published = ?", true)
	}

	var articles []models.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, errors.New("Failed to fetch articles")
	}
	return articles, nil
}

func resolveArticle(p graphql.ResolveParams) (interface{}, error) {
	slug, _ := p.Args["slug"].(string)

	query := db.DB.Preload("Comments")
	if v := ViewerFrom(p.Context); v == nil || v.Role != models.RoleAdmin {
		query = query.Where("published = ?", true)
	}

	var article models.Article
	if query.Where("slug = ?", slug).First(&article).RowsAffected == 0 {
		return nil, errors.New("Article not found")
	}
	return article, nil
}

func resolveCreateArticle(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var in articleInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	var existing models.Article
	if db.DB.Where("slug = ?", in.Slug).First(&existing).RowsAffected > 0 {
		return nil, errors.New("Article with this slug already exists")
	}

	article := models.Article{
		Title:     in.Title,
		Slug:      in.Slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		CoverURL:  in.CoverURL,
		Published: in.Published,
	}
	if err := db.DB.Create(&article).Error; err != nil {
		return nil, errors.New("Failed to create article")
	}
	return article, nil
}

func resolveUpdateArticle(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var article models.Article
	if db.DB.First(&article, id).RowsAffected == 0 {
		return nil, errors.New("Article not found")
	}

	var in articleInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	article.Title = in.Title
	article.Slug = in.Slug
	article.Excerpt = in.Excerpt
	article.Content = in.Content
	article.CoverURL = in.CoverURL
	article.Published = in.Published
	if err := db.DB.Save(&article).Error; err != nil {
		return nil, errors.New("Failed to update article")
	}
	return article, nil
}

func resolveDeleteArticle(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var article models.Article
	if db.DB.First(&article, id).RowsAffected == 0 {
		return nil, errors.New("Article not found")
	}
	if err := db.DB.Delete(&article).Error; err != nil {
		return nil, errors.New("Failed to delete article")
	}
	return true, nil
}

func resolveCreateComment(p graphql.ResolveParams) (interface{}, error) {
	articleID, err := parseID(p.Args["articleId"])
	if err != nil {
		return nil, err
	}
	author, _ := p.Args["author"].(string)
	email, _ := p.Args["email"].(string)
	content, _ := p.Args["content"].(string)

	var article models.Article
	if db.DB.Where("published = ?", true).First(&article, articleID).RowsAffected == 0 {
		return nil, errors.New("Article not found")
	}

	comment := models.Comment{
		ArticleID: article.ID,
		Author:    author,
		Email:     email,
		Content:   content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, errors.New("Failed to create comment")
	}
	return comment, nil
}

func resolveDeleteComment(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if db.DB.First(&comment, id).RowsAffected == 0 {
		return nil, errors.New("Comment not found")
	}
	if err := db.DB.Delete(&comment).Error; err != nil {
		return nil, errors.New("Failed to delete comment")
	}
	return true, nil
}

func resolveTestimonials(p graphql.ResolveParams) (interface{}, error) {
	var testimonials []models.Testimonial
	if err := db.DB.Order("created_at desc").Find(&testimonials).Error; err != nil {
		return nil, errors.New("Failed to fetch testimonials")
	}
	return testimonials, nil
}

func resolveCreateTestimonial(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var in testimonialInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	testimonial := models.Testimonial{
		Author:    in.Author,
		Role:      in.Role,
		Content:   in.Content,
		Rating:    in.Rating,
		AvatarURL: in.AvatarURL,
	}
	if err := db.DB.Create(&testimonial).Error; err != nil {
		return nil, errors.New("Failed to create testimonial")
	}
	return testimonial, nil
}

func resolveUpdateTestimonial(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var testimonial models.Testimonial
	if db.DB.First(&testimonial, id).RowsAffected == 0 {
		return nil, errors.New("Testimonial not found")
	}

	var in testimonialInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	testimonial.Author = in.Author
	testimonial.Role = in.Role
	testimonial.Content = in.Content
	testimonial.Rating = in.Rating
	testimonial.AvatarURL = in.AvatarURL
	if err := db.DB.Save(&testimonial).Error; err != nil {
		return nil, errors.New("Failed to update testimonial")
	}
	return testimonial, nil
}

func resolveDeleteTestimonial(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var testimonial models.Testimonial
	if db.DB.First(&testimonial, id).RowsAffected == 0 {
		return nil, errors.New("Testimonial not found")
	}
	if err := db.DB.Delete(&testimonial).Error; err != nil {
		return nil, errors.New("Failed to delete testimonial")
	}
	return true, nil
}

func resolveNews(p graphql.ResolveParams) (interface{}, error) {
	var news []models.News
	if err := db.DB.Order("published_at desc").Find(&news).Error; err != nil {
		return nil, errors.New("Failed to fetch news")
	}
	return news, nil
}

func resolveCreateNews(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	var in newsInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	item := models.News{
		Title:    in.Title,
		Body:     in.Body,
		ImageURL: in.ImageURL,
	}
	if in.PublishedAt != nil {
		item.PublishedAt = *in.PublishedAt
	}
	if err := db.DB.Create(&item).Error; err != nil {
		return nil, errors.New("Failed to create news")
	}
	return item, nil
}

func resolveUpdateNews(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var item models.News
	if db.DB.First(&item, id).RowsAffected == 0 {
		return nil, errors.New("News not found")
	}

	var in newsInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Body = in.Body
	item.ImageURL = in.ImageURL
	if in.PublishedAt != nil {
		item.PublishedAt = *in.PublishedAt
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return nil, errors.New("Failed to update news")
	}
	return item, nil
}

func resolveDeleteNews(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdmin(p.Context); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var item models.News
	if db.DB.First(&item, id).RowsAffected == 0 {
		return nil, errors.New("News not found")
	}
	if err := db.DB.Delete(&item).Error; err != nil {
		return nil, errors.New("Failed to delete news")
	}
	return true, nil
}
