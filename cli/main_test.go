package main

import (
  "errors"
  "io"
  "os"

  . "github.com/onsi/ginkgo"
  . "github.com/onsi/gomega"
)

var _ = Describe("printRejections", func() {

  captureStdout := func(print func()) string {
    r, w, err := os.Pipe()
    Expect(err).To(Succeed())
    stdout := os.Stdout
    os.Stdout = w
    defer func() { os.Stdout = stdout }()

    print()
    w.Close()
    out, err := io.ReadAll(r)
    Expect(err).To(Succeed())
    return string(out)
  }

  It("lists each joined rejection on its own line", func() {
    err := errors.Join(errors.New(`voter "V3" was not registered`), errors.New("Already voted!"))
    Expect(captureStdout(func() { printRejections(err) })).To(Equal(
      " - voter \"V3\" was not registered\n - Already voted!\n",
    ))
  })

  It("prints a single error as one line", func() {
    Expect(captureStdout(func() { printRejections(errors.New("Wrong candidate!")) })).To(Equal(" - Wrong candidate!\n"))
  })
})
