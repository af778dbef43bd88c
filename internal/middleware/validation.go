package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindJSON binds and validates a JSON body, answering 400 on failure
func BindJSON(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.JSON)
}

// BindForm binds and validates a multipart or urlencoded form, answering 400 on failure
func BindForm(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.Default(c.Request.Method, c.ContentType()))
}

// BindQuery binds and validates query parameters, answering 400 on failure
func BindQuery(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.Query)
}

func bindWith(c *gin.Context, obj interface{}, b binding.Binding) bool {
	if err := c.ShouldBindWith(obj, b); err != nil {
		HandleBindingError(c, err)
		return false
	}
	return true
}
