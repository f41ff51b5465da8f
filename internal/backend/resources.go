package backend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/models"
	"github.com/depositodopitty/pit/internal/store"
	"github.com/depositodopitty/pit/internal/wire"
)

// hooks customise a mounted resource.
type hooks[T any] struct {
	// validate returns a message for a body that cannot be stored.
	validate    func(v T, creating bool) string
	beforeWrite func(*T)
	afterRead   func([]T) []T
}

// mount registers get-all, create, update/:id and delete/:id for one resource.
func mount[T any, P models.Ptr[T], W any](g *gin.RouterGroup, name string, repo store.Repository[T], m wire.Mapper[T, W], h hooks[T]) {
	read := func(v T) W {
		if h.afterRead != nil {
			v = h.afterRead([]T{v})[0]
		}
		return m.ToWire(v)
	}

	g.GET("/"+name+"/get-all", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		if h.afterRead != nil {
			list = h.afterRead(list)
		}
		c.JSON(http.StatusOK, m.ToWireList(list))
	})

	g.POST("/"+name+"/create", func(c *gin.Context) {
		var in W
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "JSON inválido"})
			return
		}
		v := models.WithKey[T, P](m.FromWire(in), 0)
		if !valid(c, h, v, true) {
			return
		}
		if h.beforeWrite != nil {
			h.beforeWrite(&v)
		}
		saved, err := repo.Create(c.Request.Context(), v)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, read(saved))
	})

	g.PUT("/"+name+"/update/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in W
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "JSON inválido"})
			return
		}
		v := models.WithKey[T, P](m.FromWire(in), id)
		if !valid(c, h, v, false) {
			return
		}
		if h.beforeWrite != nil {
			h.beforeWrite(&v)
		}
		saved, err := repo.Update(c.Request.Context(), v)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, read(saved))
	})

	g.DELETE("/"+name+"/delete/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := repo.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func valid[T any](c *gin.Context, h hooks[T], v T, creating bool) bool {
	if h.validate == nil {
		return true
	}
	if msg := h.validate(v, creating); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return false
	}
	return true
}

func paramID(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || n == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return 0, false
	}
	return uint(n), true
}

// fail maps store errors to the API error contract: {"message": ...}.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Registro não encontrado"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "E-mail já cadastrado"})
	case errors.Is(err, store.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado"})
	default:
		logger.FromContext(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("api request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno"})
	}
}
